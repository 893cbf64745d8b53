package catalog

// FallbackCatalog returns the fixed mock catalog served whenever upstream
// credentials are absent, the upstream call fails, or the response fails
// shape validation. Every product here independently satisfies the canonical
// model invariants; nothing in this set passes through the transformer.
//
// The MOCK-DATA tag is the signal the UI uses to visually mark simulated
// catalog data. A fresh slice is built per call so callers can never mutate a
// shared copy.
func FallbackCatalog() []Product {
	return []Product{
		{
			ID:          "mock-tee-democracy",
			Title:       "Democracy Is A Verb Tee",
			Description: "Heavyweight cotton tee for people who show up. Union printed.",
			Images: []Image{
				{Src: "/static/mock/tee-black-front.png", IsDefault: true, Position: "front", Alt: "Democracy Is A Verb Tee (front, black)"},
				{Src: "/static/mock/tee-black-back.png", Position: "view-1", Alt: "Democracy Is A Verb Tee (back, black)"},
				{Src: "/static/mock/tee-white-front.png", Position: "view-2", Alt: "Democracy Is A Verb Tee (front, white)"},
			},
			Variants: []Variant{
				{ID: "9001", Title: "Black / M", Price: PriceFromCents(2499), IsEnabled: true, StockQuantity: 40, ImageIndex: intPtr(0), Options: map[string]string{"Color": "Black", "Size": "M"}},
				{ID: "9002", Title: "Black / L", Price: PriceFromCents(2499), IsEnabled: true, StockQuantity: 25, ImageIndex: intPtr(0), Options: map[string]string{"Color": "Black", "Size": "L"}},
				{ID: "9003", Title: "White / M", Price: PriceFromCents(2499), IsEnabled: true, StockQuantity: 31, ImageIndex: intPtr(2), Options: map[string]string{"Color": "White", "Size": "M"}},
				{ID: "9004", Title: "White / L", Price: PriceFromCents(2699), IsEnabled: true, StockQuantity: 12, ImageIndex: intPtr(2), Options: map[string]string{"Color": "White", "Size": "L"}},
			},
			Options: []Option{
				{Name: "Color", Type: "color", Values: []string{"Black", "White"}},
				{Name: "Size", Type: "size", Values: []string{"M", "L"}},
			},
			Tags: []string{"apparel", "tees", MockDataTag},
		},
		{
			ID:          "mock-mug-filibuster",
			Title:       "Filibuster Fuel Mug",
			Description: "Eleven ounces of ceramic perseverance. Dishwasher safe, debate ready.",
			Images: []Image{
				{Src: "/static/mock/mug-navy.png", IsDefault: true, Position: "front", Alt: "Filibuster Fuel Mug (navy)"},
				{Src: "/static/mock/mug-red.png", Position: "view-1", Alt: "Filibuster Fuel Mug (red)"},
			},
			Variants: []Variant{
				{ID: "9101", Title: "Navy", Price: PriceFromCents(1499), IsEnabled: true, StockQuantity: 60, ImageIndex: intPtr(0), Options: map[string]string{"Color": "Navy"}},
				{ID: "9102", Title: "Red", Price: PriceFromCents(1499), IsEnabled: true, StockQuantity: 48, ImageIndex: intPtr(1), Options: map[string]string{"Color": "Red"}},
			},
			Options: []Option{
				{Name: "Color", Type: "color", Values: []string{"Navy", "Red"}},
			},
			Tags: []string{"drinkware", MockDataTag},
		},
		{
			ID:          "mock-sign-yard",
			Title:       "Vote Like You Mean It Yard Sign",
			Description: "Weatherproof corrugate with an H-stake. Loud enough for the whole street.",
			Images: []Image{
				{Src: "/static/mock/yard-sign.png", IsDefault: true, Position: "front", Alt: "Vote Like You Mean It Yard Sign"},
			},
			Variants: []Variant{
				{ID: "9201", Title: "18x24", Price: PriceFromCents(1299), IsEnabled: true, StockQuantity: 200, Options: map[string]string{"Size": `18" x 24"`}},
				{ID: "9202", Title: "24x36", Price: PriceFromCents(1999), IsEnabled: false, StockQuantity: 0, Options: map[string]string{"Size": `24" x 36"`}},
			},
			Options: []Option{
				{Name: "Size", Type: "size", Values: []string{`18" x 24"`, `24" x 36"`}},
			},
			Tags: []string{"signs", "outdoor", MockDataTag},
		},
	}
}

func intPtr(v int) *int {
	return &v
}
