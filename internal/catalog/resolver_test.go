package catalog

import "testing"

func TestResolveVariant(t *testing.T) {
	t.Parallel()

	variants := []Variant{
		{ID: "1", Options: map[string]string{"Size": "S", "Color": "Red"}},
		{ID: "2", Options: map[string]string{"Size": "M", "Color": "Red"}},
	}

	got := ResolveVariant(variants, map[string]string{"Size": "M", "Color": "Red"})
	if got == nil || got.ID != "2" {
		t.Fatalf("expected variant 2, got %+v", got)
	}

	if got := ResolveVariant(variants, map[string]string{"Size": "L", "Color": "Red"}); got != nil {
		t.Fatalf("expected no match, got %+v", got)
	}
}

func TestResolveVariant_ExtraSelectionKeysIgnored(t *testing.T) {
	t.Parallel()

	variants := []Variant{
		{ID: "1", Options: map[string]string{"Size": "M"}},
	}

	got := ResolveVariant(variants, map[string]string{"Size": "M", "Color": "Red", "GiftWrap": "Yes"})
	if got == nil || got.ID != "1" {
		t.Fatalf("expected variant 1, got %+v", got)
	}
}

func TestResolveVariant_FirstMatchInDeclarationOrder(t *testing.T) {
	t.Parallel()

	variants := []Variant{
		{ID: "1", Options: map[string]string{"Color": "Red"}},
		{ID: "2", Options: map[string]string{"Color": "Red"}},
	}

	got := ResolveVariant(variants, map[string]string{"Color": "Red"})
	if got == nil || got.ID != "1" {
		t.Fatalf("expected first declared variant, got %+v", got)
	}
}

func TestResolveVariant_EmptySelection(t *testing.T) {
	t.Parallel()

	variants := []Variant{
		{ID: "1", Options: map[string]string{"Size": "M"}},
	}
	if got := ResolveVariant(variants, nil); got != nil {
		t.Fatalf("expected no match for empty selection, got %+v", got)
	}

	optionless := []Variant{{ID: "1", Options: map[string]string{}}}
	if got := ResolveVariant(optionless, nil); got == nil || got.ID != "1" {
		t.Fatalf("variant with no declared options matches any selection, got %+v", got)
	}
}
