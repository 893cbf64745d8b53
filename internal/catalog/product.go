package catalog

import "github.com/samber/lo"

// MockDataTag marks products that came from the fallback catalog rather than
// the upstream API. UI consumers filter it out of user-facing tag lists.
const MockDataTag = "MOCK-DATA"

// Product is the canonical catalog entry the rest of the storefront depends
// on. It is a read-only snapshot; every derived structure (color mappings,
// resolved variants) is recomputed from it on demand.
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Images      []Image   `json:"images"`
	Variants    []Variant `json:"variants"`
	Options     []Option  `json:"options"`
	Tags        []string  `json:"tags"`
}

type Image struct {
	Src       string `json:"src"`
	IsDefault bool   `json:"isDefault"`
	Position  string `json:"position"` // "front" or "view-N"
	Alt       string `json:"alt"`
}

// Variant is one purchasable combination of option values.
// Price is always in cents; see Price for the unit policy.
type Variant struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Price         Price             `json:"price"`
	IsEnabled     bool              `json:"isEnabled"`
	Options       map[string]string `json:"options"`
	StockQuantity int               `json:"stockQuantity"`
	ImageIndex    *int              `json:"imageIndex,omitempty"`
}

// Option is one named axis of customization with its sanitized value set.
type Option struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Values []string `json:"values"`
}

// DisplayTags returns the product's tags with the mock-data marker removed.
func DisplayTags(p *Product) []string {
	return lo.Filter(p.Tags, func(tag string, _ int) bool {
		return tag != MockDataTag
	})
}

// DefaultImage returns the image marked default, or the first one when none
// is marked. Canonical products always carry at least one image.
func (p *Product) DefaultImage() Image {
	for _, img := range p.Images {
		if img.IsDefault {
			return img
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return Image{}
}

// OptionNames returns the declared option names in order.
func (p *Product) OptionNames() []string {
	return lo.Map(p.Options, func(o Option, _ int) string { return o.Name })
}
