package cart

import (
	"errors"
	"maps"
	"sync"

	"github.com/google/uuid"

	"soapbox/internal/catalog"
)

var (
	ErrBadQuantity     = errors.New("quantity must be positive")
	ErrVariantDisabled = errors.New("variant is not purchasable")
)

// LineItem is the cart's view of a purchasable selection. Price is in
// dollars: the one deliberate unit conversion away from canonical cents
// happens when the item is added, never again afterwards.
type LineItem struct {
	ID        string            `json:"id"`
	ProductID string            `json:"productId"`
	VariantID string            `json:"variantId"`
	Quantity  int               `json:"quantity"`
	Options   map[string]string `json:"options"`
	Price     float64           `json:"price"`
}

// line keeps the canonical cents price alongside the boundary view so totals
// are computed with exact integer arithmetic, not the dollars float.
type line struct {
	LineItem
	unit catalog.Price
}

// Store holds carts in process memory, keyed by cart ID. It is explicitly
// constructed and passed by reference so tests can run independent instances.
type Store struct {
	mu    sync.RWMutex
	carts map[string][]line
}

func NewStore() *Store {
	return &Store{carts: make(map[string][]line)}
}

// Add resolves a selection into a cart line item, converting the variant's
// canonical price to dollars at this boundary.
func (s *Store) Add(cartID string, product *catalog.Product, variant *catalog.Variant, quantity int) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, ErrBadQuantity
	}
	if !variant.IsEnabled {
		return LineItem{}, ErrVariantDisabled
	}

	item := LineItem{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		VariantID: variant.ID,
		Quantity:  quantity,
		Options:   maps.Clone(variant.Options),
		Price:     variant.Price.Dollars(),
	}

	s.mu.Lock()
	s.carts[cartID] = append(s.carts[cartID], line{LineItem: item, unit: variant.Price})
	s.mu.Unlock()

	return item, nil
}

// Items returns a copy of the cart's line items.
func (s *Store) Items(cartID string) []LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.carts[cartID]
	items := make([]LineItem, len(lines))
	for i, l := range lines {
		items[i] = l.LineItem
	}
	return items
}

// Total sums the cart in canonical cents. Rounding to a display string
// happens only in the Price formatter.
func (s *Store) Total(cartID string) catalog.Price {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total catalog.Price
	for _, l := range s.carts[cartID] {
		total += l.unit.Times(l.Quantity)
	}
	return total
}

// Clear empties a cart.
func (s *Store) Clear(cartID string) {
	s.mu.Lock()
	delete(s.carts, cartID)
	s.mu.Unlock()
}
