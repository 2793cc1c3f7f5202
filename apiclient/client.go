// Package apiclient is the HTTP client for the remote catalog API. All
// persistent state (products, taxonomy, users) lives behind it; this
// codebase only calls. Requests carry no retry and surface failures to the
// caller as-is.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/guonaihong/gout"
	"github.com/guonaihong/gout/dataflow"

	"github.com/trendora/storefront-api/models"
)

type Client struct {
	baseURL string
	timeout time.Duration
}

func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, timeout: 15 * time.Second}
}

// BaseURL returns the configured API origin.
func (c *Client) BaseURL() string { return c.baseURL }

// apiError is the backend's error envelope; it uses either "message" or
// "error" depending on the route.
type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e apiError) text() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Error != "" {
		return e.Error
	}
	return "request failed"
}

func decodeError(status int, body []byte) error {
	var envelope apiError
	_ = json.Unmarshal(body, &envelope)
	switch status {
	case 403:
		return fmt.Errorf("%w: %s", models.ErrAccountBlocked, envelope.text())
	case 404:
		return fmt.Errorf("%w: %s", models.ErrNotFound, envelope.text())
	}
	return fmt.Errorf("backend returned %d: %s", status, envelope.text())
}

// do runs a request and decodes the response into out when the call
// succeeds. token, body and out may be empty/nil.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var raw []byte
	var code int

	var df *dataflow.DataFlow
	switch method {
	case "POST":
		df = gout.POST(c.baseURL + path)
	case "PUT":
		df = gout.PUT(c.baseURL + path)
	case "DELETE":
		df = gout.DELETE(c.baseURL + path)
	default:
		df = gout.GET(c.baseURL + path)
	}
	df = df.WithContext(ctx).SetTimeout(c.timeout)
	if token != "" {
		df = df.SetHeader(gout.H{"Authorization": "Bearer " + token})
	}
	if body != nil {
		df = df.SetJSON(body)
	}
	if err := df.BindBody(&raw).Code(&code).Do(); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if code < 200 || code > 299 {
		return decodeError(code, raw)
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

// ---------------------------------------------
// CATALOG READS
// ---------------------------------------------

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, "GET", "/products", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, "GET", "/products/"+id, "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, "GET", "/categories", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) Subcategories(ctx context.Context) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	if err := c.do(ctx, "GET", "/subcategories", "", nil, &subcategories); err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (c *Client) Fits(ctx context.Context) ([]models.Fit, error) {
	var fits []models.Fit
	if err := c.do(ctx, "GET", "/fits", "", nil, &fits); err != nil {
		return nil, err
	}
	return fits, nil
}
