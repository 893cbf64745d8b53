package printify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"soapbox/internal/config"
)

const (
	// DefaultBaseURL is the print-on-demand catalog API base URL.
	DefaultBaseURL = "https://api.printify.com/v1"

	// DefaultPageSize matches the upstream listing page size.
	DefaultPageSize = 50
)

// Client calls the upstream catalog API with bearer-token auth.
// Every call is a single attempt; callers fall back to the mock catalog on
// failure instead of retrying.
type Client struct {
	token      string
	shopID     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an upstream catalog client.
func NewClient(cfg config.PrintifyConfig) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("API token is required")
	}
	if strings.TrimSpace(cfg.ShopID) == "" {
		return nil, errors.New("shop ID is required")
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &Client{
		token:      cfg.Token,
		shopID:     cfg.ShopID,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}, nil
}

// GetProducts fetches one page of the shop's product listing.
// docs: https://developers.printify.com/#retrieve-a-list-of-all-products
func (c *Client) GetProducts(ctx context.Context, page int) (*ProductsPage, error) {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))
	params.Set("limit", fmt.Sprintf("%d", DefaultPageSize))

	raw, err := c.get(ctx, fmt.Sprintf("/shops/%s/products.json", url.PathEscape(c.shopID)), params, "product listing")
	if err != nil {
		return nil, err
	}

	results, err := ParseProductsPage(raw)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetProduct fetches a single product by its upstream ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*RawProduct, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("product ID is required")
	}

	raw, err := c.get(ctx, fmt.Sprintf("/shops/%s/products/%s.json", url.PathEscape(c.shopID), url.PathEscape(id)), nil, "product fetch")
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	var product RawProduct
	if err := json.Unmarshal(raw, &product); err != nil {
		return nil, fmt.Errorf("unmarshal product payload: %w", err)
	}
	return &product, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, operation string) (json.RawMessage, error) {
	requestURL, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("parse %s URL: %w", operation, err)
	}
	if params != nil {
		requestURL.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Correlation-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", operation, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(resp.Body, 4*1024*1024)); err != nil {
		return nil, fmt.Errorf("read %s response: %w", operation, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body := strings.TrimSpace(buf.String())
		slog.ErrorContext(ctx, "received upstream catalog response",
			"operation", operation,
			"status", resp.StatusCode,
			"body", body,
		)
		return nil, &StatusError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	return buf.Bytes(), nil
}
