package catalog

import (
	"fmt"
	"math"
)

// Price is a monetary amount in the smallest currency fraction (cents).
//
// The upstream API does not reliably tag its price unit, so conversion
// happens exactly once, at the ingestion boundary (PriceFromUpstream), and is
// never re-guessed downstream. The only place dollars reappear is the cart
// boundary, via Dollars().
type Price int64

// PriceFromUpstream converts an untagged upstream variant price to the
// canonical unit. Upstream sends cents; fractional values only show up when a
// payload was already converted, so they are rounded to the nearest cent.
func PriceFromUpstream(raw float64) Price {
	return Price(math.Round(raw))
}

func PriceFromCents(cents int64) Price {
	return Price(cents)
}

func (p Price) Cents() int64 {
	return int64(p)
}

// Dollars converts to the major unit. Used only for display and for the cart
// boundary, which deliberately accepts dollars.
func (p Price) Dollars() float64 {
	return float64(p) / 100
}

// Times multiplies by an integer quantity in cents, so line totals stay exact
// no matter how many are ordered. Rounding happens only at formatting.
func (p Price) Times(quantity int) Price {
	return Price(int64(p) * int64(quantity))
}

func (p Price) String() string {
	cents := int64(p)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
