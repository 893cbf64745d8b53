// catalogdump fetches every upstream catalog page, runs the canonical
// transform, and prints the result as JSON. Handy for eyeballing a real shop
// against the mock catalog.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"soapbox/internal/catalog"
	"soapbox/internal/config"
	"soapbox/internal/printify"
)

func main() {
	var concurrency int
	flag.IntVar(&concurrency, "concurrency", 4, "Concurrent page fetches")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if !cfg.HasUpstream() {
		log.Fatal("PRINTIFY_API_TOKEN and PRINTIFY_SHOP_ID are required")
	}

	client, err := printify.NewClient(cfg.Printify)
	if err != nil {
		log.Fatalf("failed to create upstream client: %v", err)
	}

	ctx := context.Background()
	first, err := client.GetProducts(ctx, 1)
	if err != nil {
		log.Fatalf("failed to fetch first page: %v", err)
	}

	pages := make([][]printify.RawProduct, first.LastPage)
	if first.LastPage > 0 {
		pages[0] = first.Data
	} else {
		pages = [][]printify.RawProduct{first.Data}
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for page := 2; page <= first.LastPage; page++ {
		g.Go(func() error {
			result, err := client.GetProducts(gctx, page)
			if err != nil {
				return fmt.Errorf("fetch page %d: %w", page, err)
			}
			mu.Lock()
			pages[page-1] = result.Data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("failed to fetch catalog: %v", err)
	}

	var products []catalog.Product
	for _, raws := range pages {
		products = append(products, catalog.TransformAll(ctx, raws)...)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(products); err != nil {
		log.Fatalf("failed to encode catalog: %v", err)
	}
}
