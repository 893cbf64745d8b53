package catalog

import "testing"

func TestPriceFromUpstream_CanonicalUnit(t *testing.T) {
	t.Parallel()

	price := PriceFromUpstream(2499)
	if price.Cents() != 2499 {
		t.Fatalf("expected 2499 cents, got %d", price.Cents())
	}
	if price.Dollars() != 24.99 {
		t.Fatalf("expected 24.99 dollars, got %f", price.Dollars())
	}
	if price.String() != "$24.99" {
		t.Fatalf("unexpected formatting: %s", price.String())
	}
}

func TestPriceTimes_ExactArithmetic(t *testing.T) {
	t.Parallel()

	// 10.99 * 3 drifts in float64; cents arithmetic must not.
	total := PriceFromCents(1099).Times(3)
	if total.Cents() != 3297 {
		t.Fatalf("expected 3297 cents, got %d", total.Cents())
	}
	if total.String() != "$32.97" {
		t.Fatalf("unexpected formatting: %s", total.String())
	}
}

func TestPriceString_EdgeCases(t *testing.T) {
	t.Parallel()

	cases := map[Price]string{
		PriceFromCents(0):    "$0.00",
		PriceFromCents(5):    "$0.05",
		PriceFromCents(100):  "$1.00",
		PriceFromCents(-250): "-$2.50",
	}
	for price, want := range cases {
		if got := price.String(); got != want {
			t.Fatalf("%d cents: expected %s, got %s", price.Cents(), want, got)
		}
	}
}

func TestPriceFromUpstream_RoundsFractionalCents(t *testing.T) {
	t.Parallel()

	if got := PriceFromUpstream(2499.6); got.Cents() != 2500 {
		t.Fatalf("expected 2500 cents, got %d", got.Cents())
	}
}
