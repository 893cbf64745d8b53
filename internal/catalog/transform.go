package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"soapbox/internal/printify"
)

// placeholderStock is assumed when upstream omits a variant's quantity, so
// storefront pages never render a phantom "out of stock".
const placeholderStock = 100

// placeholderImageSrc is synthesized when upstream supplies no images at all.
const placeholderImageSrc = "/static/placeholder-product.png"

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// TransformAll maps a batch of raw upstream records into canonical products.
// A malformed record is dropped with a logged diagnostic; it never aborts the
// rest of the batch.
func TransformAll(ctx context.Context, raws []printify.RawProduct) []Product {
	products := make([]Product, 0, len(raws))
	for _, raw := range raws {
		product, err := Transform(raw)
		if err != nil {
			slog.WarnContext(ctx, "dropping malformed upstream product",
				"id", raw.ID,
				"title", raw.Title,
				"error", err,
			)
			continue
		}
		products = append(products, *product)
	}
	return products
}

// Transform maps one raw upstream record into the canonical Product model.
// It fails only when the record is missing its identity (id or title).
func Transform(raw printify.RawProduct) (*Product, error) {
	if strings.TrimSpace(raw.ID) == "" {
		return nil, errors.New("missing id")
	}
	if strings.TrimSpace(raw.Title) == "" {
		return nil, errors.New("missing title")
	}

	product := &Product{
		ID:          strings.TrimSpace(raw.ID),
		Title:       strings.TrimSpace(raw.Title),
		Description: cleanDescription(raw.Description),
		Images:      transformImages(raw.Images, raw.Title),
		Variants:    transformVariants(raw.Variants),
		Tags:        raw.Tags,
	}
	if product.Tags == nil {
		product.Tags = []string{}
	}

	product.Options = transformOptions(raw.Options)
	ensureVariantOptionsDeclared(product)
	if len(product.Options) == 0 {
		product.Options = defaultOptionSchema()
	}

	return product, nil
}

// cleanDescription strips HTML tags, decodes the fixed entity set, and
// collapses whitespace runs to one space.
func cleanDescription(description string) string {
	text := htmlTagPattern.ReplaceAllString(description, " ")
	text = entityReplacer.Replace(text)
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

func transformImages(raws []printify.RawImage, title string) []Image {
	if len(raws) == 0 {
		return []Image{{
			Src:       placeholderImageSrc,
			IsDefault: true,
			Position:  "front",
			Alt:       title,
		}}
	}

	images := make([]Image, len(raws))
	haveDefault := false
	for i, raw := range raws {
		position := strings.TrimSpace(raw.Position)
		if position == "" {
			if i == 0 {
				position = "front"
			} else {
				position = "view-" + strconv.Itoa(i)
			}
		}

		alt := strings.TrimSpace(raw.Alt)
		if alt == "" {
			alt = fmt.Sprintf("%s (%s)", title, position)
		}

		isDefault := raw.IsDefault && !haveDefault
		if isDefault {
			haveDefault = true
		}

		images[i] = Image{
			Src:       raw.Src,
			IsDefault: isDefault,
			Position:  position,
			Alt:       alt,
		}
	}

	if !haveDefault {
		images[0].IsDefault = true
	}
	return images
}

func transformVariants(raws []printify.RawVariant) []Variant {
	variants := make([]Variant, 0, len(raws))
	for _, raw := range raws {
		options := make(map[string]string, len(raw.Options))
		for name, value := range raw.Options {
			options[name] = SanitizeOptionValue(value)
		}

		enabled := true
		if raw.IsEnabled != nil {
			enabled = *raw.IsEnabled
		}

		stock := placeholderStock
		if raw.StockQuantity != nil && *raw.StockQuantity >= 0 {
			stock = *raw.StockQuantity
		}

		variants = append(variants, Variant{
			ID:            strconv.FormatInt(raw.ID, 10),
			Title:         strings.TrimSpace(raw.Title),
			Price:         PriceFromUpstream(raw.Price),
			IsEnabled:     enabled,
			Options:       options,
			StockQuantity: stock,
			ImageIndex:    raw.ImageIndex,
		})
	}
	return variants
}

func transformOptions(raws []printify.RawOption) []Option {
	options := make([]Option, 0, len(raws))
	for _, raw := range raws {
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			continue
		}

		values := make([]string, 0, len(raw.Values))
		seen := make(map[string]bool, len(raw.Values))
		for _, rawValue := range raw.Values {
			value := SanitizeOptionValue(rawValue)
			// A value that sanitized to the fallback token carries no
			// information; drop it rather than offer "Option" as a choice.
			if value == "" || value == FallbackOptionValue || seen[value] {
				continue
			}
			seen[value] = true
			values = append(values, value)
		}
		if len(values) == 0 {
			continue
		}

		options = append(options, Option{
			Name:   name,
			Type:   strings.TrimSpace(raw.Type),
			Values: values,
		})
	}
	return options
}

// ensureVariantOptionsDeclared unions variant option entries into the
// declared option set, keeping every variant's option keys a subset of the
// product's declared option names.
func ensureVariantOptionsDeclared(product *Product) {
	index := make(map[string]int, len(product.Options))
	for i, option := range product.Options {
		index[option.Name] = i
	}

	for _, variant := range product.Variants {
		for name, value := range variant.Options {
			if value == "" {
				continue
			}
			i, declared := index[name]
			if !declared {
				product.Options = append(product.Options, Option{Name: name, Values: []string{value}})
				index[name] = len(product.Options) - 1
				continue
			}
			option := &product.Options[i]
			found := false
			for _, existing := range option.Values {
				if existing == value {
					found = true
					break
				}
			}
			if !found {
				option.Values = append(option.Values, value)
			}
		}
	}
}

// defaultOptionSchema keeps the storefront selectable when upstream declares
// nothing usable.
func defaultOptionSchema() []Option {
	return []Option{
		{Name: "Size", Type: "size", Values: []string{"Small", "Medium", "Large", "XL"}},
		{Name: "Color", Type: "color", Values: []string{"Black", "White", "Navy", "Red"}},
	}
}
