package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/trendora/storefront-api/models"
)

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type adminLoginResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// AdminLogin exchanges console credentials for an opaque bearer token. The
// token is stored verbatim; the backend is the only party that can verify it.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (*models.AdminSession, error) {
	var resp adminLoginResponse
	err := c.do(ctx, "POST", "/admin/login", "", adminLoginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Username == "" {
		resp.Username = username
	}
	return &models.AdminSession{Username: resp.Username, Token: resp.Token}, nil
}

// ImageFile is one uploaded product image.
type ImageFile struct {
	Name string
	Data []byte
}

// ProductForm is the multipart payload for product create/update: names,
// prices, taxonomy ids, a JSON-encoded size list and up to 3 images.
type ProductForm struct {
	Name          string
	Description   string
	RegularPrice  string
	DiscountPrice string
	CategoryID    string
	SubcategoryID string
	FitID         string
	Sizes         []string
	Images        []ImageFile
}

const maxProductImages = 3

func (f ProductForm) encode() (body *bytes.Buffer, contentType string, err error) {
	if len(f.Images) > maxProductImages {
		return nil, "", fmt.Errorf("at most %d images allowed, got %d", maxProductImages, len(f.Images))
	}

	body = &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := map[string]string{
		"name":         f.Name,
		"description":  f.Description,
		"regularPrice": f.RegularPrice,
		"category":     f.CategoryID,
		"subcategory":  f.SubcategoryID,
	}
	if f.DiscountPrice != "" {
		fields["discountPrice"] = f.DiscountPrice
	}
	if f.FitID != "" {
		fields["fit"] = f.FitID
	}
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, "", err
		}
	}

	sizes := f.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	sizesJSON, err := json.Marshal(sizes)
	if err != nil {
		return nil, "", err
	}
	if err := w.WriteField("sizes", string(sizesJSON)); err != nil {
		return nil, "", err
	}

	for _, img := range f.Images {
		part, err := w.CreateFormFile("images", img.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return body, w.FormDataContentType(), nil
}

// doMultipart submits a product form. gout covers the JSON routes; the
// image upload streams through stdlib multipart to keep field names and
// encoding identical to the browser's FormData submission.
func (c *Client) doMultipart(ctx context.Context, method, path, token string, form ProductForm, out any) error {
	body, contentType, err := form.encode()
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := (&http.Client{Timeout: c.timeout}).Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw)
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, form ProductForm) (*models.Product, error) {
	var product models.Product
	if err := c.doMultipart(ctx, "POST", "/products", token, form, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, form ProductForm) (*models.Product, error) {
	var product models.Product
	if err := c.doMultipart(ctx, "PUT", "/products/"+id, token, form, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, "DELETE", "/products/"+id, token, nil, nil)
}

// ---------------------------------------------
// TAXONOMY CRUD
// ---------------------------------------------

func (c *Client) CreateCategory(ctx context.Context, token, name string) (*models.Category, error) {
	var category models.Category
	err := c.do(ctx, "POST", "/categories", token, map[string]string{"name": name}, &category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, token, id, name string) error {
	return c.do(ctx, "PUT", "/categories/"+id, token, map[string]string{"name": name}, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, token, id string) error {
	return c.do(ctx, "DELETE", "/categories/"+id, token, nil, nil)
}

func (c *Client) CreateSubcategory(ctx context.Context, token, name, categoryID string) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	err := c.do(ctx, "POST", "/subcategories", token, map[string]string{
		"name":     name,
		"category": categoryID,
	}, &subcategory)
	if err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (c *Client) UpdateSubcategory(ctx context.Context, token, id, name, categoryID string) error {
	return c.do(ctx, "PUT", "/subcategories/"+id, token, map[string]string{
		"name":     name,
		"category": categoryID,
	}, nil)
}

func (c *Client) DeleteSubcategory(ctx context.Context, token, id string) error {
	return c.do(ctx, "DELETE", "/subcategories/"+id, token, nil, nil)
}

func (c *Client) CreateFit(ctx context.Context, token, name, subcategoryID string) (*models.Fit, error) {
	var fit models.Fit
	err := c.do(ctx, "POST", "/fits", token, map[string]string{
		"name":        name,
		"subcategory": subcategoryID,
	}, &fit)
	if err != nil {
		return nil, err
	}
	return &fit, nil
}

func (c *Client) UpdateFit(ctx context.Context, token, id, name, subcategoryID string) error {
	return c.do(ctx, "PUT", "/fits/"+id, token, map[string]string{
		"name":        name,
		"subcategory": subcategoryID,
	}, nil)
}

func (c *Client) DeleteFit(ctx context.Context, token, id string) error {
	return c.do(ctx, "DELETE", "/fits/"+id, token, nil, nil)
}
