package adminController

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trendora/storefront-api/apiclient"
	"github.com/trendora/storefront-api/models"
)

// GetProducts lists the catalog for the console.
//
// GET /admin/products
func GetProducts(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := api.Products(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// CreateProduct forwards the console's multipart submission to the backend:
// name, description, prices, taxonomy ids, a JSON-encoded size list and up
// to 3 images.
//
// POST /admin/products
func CreateProduct(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, ok := bindProductForm(c)
		if !ok {
			return
		}
		product, err := api.CreateProduct(c.Request.Context(), c.GetString("admin_token"), form)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create product: " + err.Error()})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
func UpdateProduct(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, ok := bindProductForm(c)
		if !ok {
			return
		}
		product, err := api.UpdateProduct(c.Request.Context(), c.GetString("admin_token"), c.Param("id"), form)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update product: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := api.DeleteProduct(c.Request.Context(), c.GetString("admin_token"), c.Param("id"))
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

func bindProductForm(c *gin.Context) (apiclient.ProductForm, bool) {
	name := c.PostForm("name")
	regularPrice := c.PostForm("regularPrice")
	if name == "" || regularPrice == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and regularPrice are required"})
		return apiclient.ProductForm{}, false
	}

	form := apiclient.ProductForm{
		Name:          name,
		Description:   c.PostForm("description"),
		RegularPrice:  regularPrice,
		DiscountPrice: c.PostForm("discountPrice"),
		CategoryID:    c.PostForm("category"),
		SubcategoryID: c.PostForm("subcategory"),
		FitID:         c.PostForm("fit"),
	}

	if sizesJSON := c.PostForm("sizes"); sizesJSON != "" {
		if err := json.Unmarshal([]byte(sizesJSON), &form.Sizes); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sizes format"})
			return apiclient.ProductForm{}, false
		}
	}

	multipart, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return apiclient.ProductForm{}, false
	}
	files := multipart.File["images"]
	if len(files) > 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At most 3 images allowed"})
		return apiclient.ProductForm{}, false
	}
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
			return apiclient.ProductForm{}, false
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
			return apiclient.ProductForm{}, false
		}
		form.Images = append(form.Images, apiclient.ImageFile{Name: header.Filename, Data: data})
	}

	return form, true
}
