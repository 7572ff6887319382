// Package catalog is a typed client for the catalog service endpoints,
// sending every call through an apiclient.Pipeline.
package catalog

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// Pagination bounds enforced by the catalog service.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// WhoAmI is the tenant context the backend resolved for the caller.
type WhoAmI struct {
	TenantID      string   `json:"tenantId"`
	UserID        string   `json:"userId"`
	Roles         []string `json:"roles"`
	CorrelationID string   `json:"correlationId"`
}

type ProductSummary struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Currency   string `json:"currency"`
}

type ProductDetail struct {
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Currency    string `json:"currency"`
	Active      bool   `json:"active"`
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Size       int `json:"size"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// HasNext reports whether another page follows.
func (p Page[T]) HasNext() bool { return p.Page+1 < p.TotalPages }

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Page > 0 }

// JSONGetter performs a GET and decodes the JSON response. *apiclient.Pipeline implements it.
type JSONGetter interface {
	GetJSON(ctx context.Context, rawURL string, out any) error
}

// Client calls the catalog service.
type Client struct {
	api JSONGetter
}

func New(api JSONGetter) *Client {
	return &Client{api: api}
}

// WhoAmI returns the tenant context of the current caller.
func (c *Client) WhoAmI(ctx context.Context) (WhoAmI, error) {
	var out WhoAmI
	if err := c.api.GetJSON(ctx, "/api/catalog/context/whoami", &out); err != nil {
		return WhoAmI{}, err
	}
	return out, nil
}

// ListProducts returns one page of products matching q. page is zero-based;
// size is clamped to [1, MaxPageSize].
func (c *Client) ListProducts(ctx context.Context, page, size int, q string) (Page[ProductSummary], error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	size = min(size, MaxPageSize)

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))
	if q = strings.TrimSpace(q); q != "" {
		params.Set("q", q)
	}

	var out Page[ProductSummary]
	if err := c.api.GetJSON(ctx, "/api/catalog/products?"+params.Encode(), &out); err != nil {
		return Page[ProductSummary]{}, err
	}
	return out, nil
}

// GetProduct returns a single product.
func (c *Client) GetProduct(ctx context.Context, productID string) (ProductDetail, error) {
	var out ProductDetail
	if err := c.api.GetJSON(ctx, "/api/catalog/products/"+url.PathEscape(productID), &out); err != nil {
		return ProductDetail{}, err
	}
	return out, nil
}
