package catalog

import (
	"context"
	"errors"
	"log/slog"

	"soapbox/internal/printify"
)

// ErrProductNotFound is returned when a product ID resolves neither upstream
// nor in the fallback catalog.
var ErrProductNotFound = errors.New("product not found")

// Fetcher is the upstream collaborator the service consumes. It is satisfied
// by *printify.Client; tests substitute fakes.
type Fetcher interface {
	GetProducts(ctx context.Context, page int) (*printify.ProductsPage, error)
	GetProduct(ctx context.Context, id string) (*printify.RawProduct, error)
}

// Service produces the canonical catalog: upstream data transformed when the
// upstream is healthy, the fixed mock catalog otherwise. The two are never
// interleaved; a page is all-transformed or all-fallback.
type Service struct {
	fetcher Fetcher // nil when upstream credentials are absent
}

func NewService(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Products returns one canonical catalog page. A valid-but-empty upstream
// page is an empty catalog, not a failure; every other upstream problem
// (missing credentials, transport error, non-2xx, malformed batch shape)
// falls through to the mock catalog.
func (s *Service) Products(ctx context.Context, page int) []Product {
	if s.fetcher == nil {
		return FallbackCatalog()
	}

	upstream, err := s.fetcher.GetProducts(ctx, page)
	if err != nil {
		slog.WarnContext(ctx, "upstream catalog unavailable, serving mock catalog",
			"page", page,
			"error", err,
		)
		return FallbackCatalog()
	}

	return TransformAll(ctx, upstream.Data)
}

// Product returns one canonical product. When upstream is unavailable the
// fallback catalog is searched instead, so mock product pages stay reachable.
func (s *Service) Product(ctx context.Context, id string) (*Product, error) {
	if s.fetcher == nil {
		return findFallback(id)
	}

	raw, err := s.fetcher.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, printify.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		slog.WarnContext(ctx, "upstream product unavailable, searching mock catalog",
			"id", id,
			"error", err,
		)
		return findFallback(id)
	}

	product, err := Transform(*raw)
	if err != nil {
		slog.WarnContext(ctx, "upstream product malformed", "id", id, "error", err)
		return nil, ErrProductNotFound
	}
	return product, nil
}

func findFallback(id string) (*Product, error) {
	for _, product := range FallbackCatalog() {
		if product.ID == id {
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}
