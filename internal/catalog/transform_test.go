package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"soapbox/internal/printify"
)

func boolPtr(v bool) *bool { return &v }

func TestTransformAll_SkipsMalformedRecords(t *testing.T) {
	t.Parallel()

	raws := []printify.RawProduct{
		{ID: "", Title: "No ID"},
		{ID: "p1", Title: "Good Product"},
		{ID: "p2", Title: "   "},
		{ID: "p3", Title: "Another Good One"},
	}

	products := TransformAll(context.Background(), raws)
	require.Len(t, products, 2)
	require.Equal(t, "p1", products[0].ID)
	require.Equal(t, "p3", products[1].ID)
}

func TestTransform_Description(t *testing.T) {
	t.Parallel()

	product, err := Transform(printify.RawProduct{
		ID:          "p1",
		Title:       "Tee",
		Description: "<p>Soft &amp; sturdy.</p>\n\n<br>Union&nbsp;printed &#39;round the clock &lt;3</p>",
	})
	require.NoError(t, err)
	require.Equal(t, "Soft & sturdy. Union printed 'round the clock <3", product.Description)
}

func TestTransform_Images(t *testing.T) {
	t.Parallel()

	product, err := Transform(printify.RawProduct{
		ID:    "p1",
		Title: "Rally Tee",
		Images: []printify.RawImage{
			{Src: "a.png"},
			{Src: "b.png"},
			{Src: "c.png", Alt: "custom alt", IsDefault: true},
		},
	})
	require.NoError(t, err)

	require.Equal(t, "front", product.Images[0].Position)
	require.Equal(t, "view-1", product.Images[1].Position)
	require.Equal(t, "view-2", product.Images[2].Position)
	require.Equal(t, "Rally Tee (front)", product.Images[0].Alt)
	require.Equal(t, "custom alt", product.Images[2].Alt)

	defaults := 0
	for _, img := range product.Images {
		if img.IsDefault {
			defaults++
		}
	}
	require.Equal(t, 1, defaults)
	require.True(t, product.Images[2].IsDefault)
}

func TestTransform_AtMostOneDefaultImage(t *testing.T) {
	t.Parallel()

	product, err := Transform(printify.RawProduct{
		ID:    "p1",
		Title: "Tee",
		Images: []printify.RawImage{
			{Src: "a.png", IsDefault: true},
			{Src: "b.png", IsDefault: true},
		},
	})
	require.NoError(t, err)
	require.True(t, product.Images[0].IsDefault)
	require.False(t, product.Images[1].IsDefault)
}

func TestTransform_SynthesizesPlaceholderImage(t *testing.T) {
	t.Parallel()

	product, err := Transform(printify.RawProduct{ID: "p1", Title: "Imageless"})
	require.NoError(t, err)
	require.Len(t, product.Images, 1)
	require.True(t, product.Images[0].IsDefault)
	require.Equal(t, "front", product.Images[0].Position)
	require.NotEmpty(t, product.Images[0].Src)
}

func TestTransform_Variants(t *testing.T) {
	t.Parallel()

	quantity := 7
	product, err := Transform(printify.RawProduct{
		ID:    "p1",
		Title: "Tee",
		Variants: []printify.RawVariant{
			{
				ID:    101,
				Title: "Red / M",
				Price: 2499,
				Options: map[string]printify.OptionValue{
					"Color": printify.RecordValue(map[string]any{"name": "Red", "id": float64(3)}),
					"Size":  printify.StringValue(" M "),
				},
			},
			{
				ID:            102,
				Title:         "Red / L",
				Price:         2699,
				IsEnabled:     boolPtr(false),
				StockQuantity: &quantity,
				Options: map[string]printify.OptionValue{
					"Color": printify.StringValue("Red"),
					"Size":  printify.StringValue("L"),
				},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, product.Variants, 2)

	first := product.Variants[0]
	require.Equal(t, "101", first.ID)
	require.Equal(t, PriceFromCents(2499), first.Price)
	require.True(t, first.IsEnabled, "isEnabled defaults to true")
	require.Equal(t, placeholderStock, first.StockQuantity)
	require.Equal(t, map[string]string{"Color": "Red", "Size": "M"}, first.Options)

	second := product.Variants[1]
	require.False(t, second.IsEnabled)
	require.Equal(t, 7, second.StockQuantity)
}

func TestTransform_OptionsDropFallbackValues(t *testing.T) {
	t.Parallel()

	product, err := Transform(printify.RawProduct{
		ID:    "p1",
		Title: "Tee",
		Options: []printify.RawOption{
			{
				Name: "Color",
				Type: "color",
				Values: []printify.OptionValue{
					printify.StringValue("Black"),
					printify.RecordValue(map[string]any{}), // sanitizes to the fallback token
					printify.StringValue("White"),
					printify.StringValue("Black"), // duplicate
				},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, product.Options, 1)
	require.Equal(t, []string{"Black", "White"}, product.Options[0].Values)
}

func TestTransform_DefaultOptionSchema(t *testing.T) {
	t.Parallel()

	product, err := Transform(printify.RawProduct{
		ID:    "p1",
		Title: "Optionless",
		Options: []printify.RawOption{
			{Name: "Color", Values: []printify.OptionValue{printify.RecordValue(map[string]any{})}},
		},
	})
	require.NoError(t, err)

	require.Len(t, product.Options, 2)
	require.Equal(t, "Size", product.Options[0].Name)
	require.Equal(t, []string{"Small", "Medium", "Large", "XL"}, product.Options[0].Values)
	require.Equal(t, "Color", product.Options[1].Name)
	require.Equal(t, []string{"Black", "White", "Navy", "Red"}, product.Options[1].Values)
}

func TestTransform_VariantOptionKeysAreDeclared(t *testing.T) {
	t.Parallel()

	product, err := Transform(printify.RawProduct{
		ID:    "p1",
		Title: "Tee",
		Options: []printify.RawOption{
			{Name: "Size", Values: []printify.OptionValue{printify.StringValue("M")}},
		},
		Variants: []printify.RawVariant{
			{
				ID:    101,
				Price: 1999,
				Options: map[string]printify.OptionValue{
					"Size":     printify.StringValue("M"),
					"Material": printify.StringValue("Organic Cotton"),
				},
			},
		},
	})
	require.NoError(t, err)

	declared := map[string]bool{}
	for _, option := range product.Options {
		declared[option.Name] = true
	}
	for _, variant := range product.Variants {
		for name := range variant.Options {
			require.True(t, declared[name], "variant option %q must be declared", name)
		}
	}
}
