package shopControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trendora/storefront-api/apiclient"
	"github.com/trendora/storefront-api/catalog"
	"github.com/trendora/storefront-api/checkout"
	"github.com/trendora/storefront-api/models"
)

// SizeFacet is the fixed size filter the storefront offers.
var SizeFacet = []string{"S", "M", "L", "XL", "XXL"}

const relatedLimit = 4

// GetShop lists the visible products for the current filter selection along
// with the valid child-filter options.
//
// GET /shop/products?category=&subcategory=&fit=&size=
func GetShop(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sel catalog.Selection
		if err := c.ShouldBindQuery(&sel); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters"})
			return
		}

		ctx := c.Request.Context()
		products, err := api.Products(ctx)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load products. Please try again later."})
			return
		}
		categories, err := api.Categories(ctx)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load categories. Please try again later."})
			return
		}
		subcategories, err := api.Subcategories(ctx)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load subcategories. Please try again later."})
			return
		}
		fits, err := api.Fits(ctx)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load fits. Please try again later."})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": catalog.Filter(products, sel),
			"filters": gin.H{
				"selection":     sel,
				"categories":    categories,
				"subcategories": catalog.SubcategoryOptions(subcategories, sel.Category),
				"fits":          catalog.FitOptions(fits, sel.Subcategory),
				"sizes":         SizeFacet,
			},
		})
	}
}

// GetProductDetails returns one product, its related products and a
// prefilled WhatsApp inquiry link.
//
// GET /shop/products/:id?size=
func GetProductDetails(api *apiclient.Client, builder *checkout.Builder) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		product, err := api.Product(ctx, c.Param("id"))
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load product. Please try again later."})
			return
		}

		// Related products are best-effort; a failed list fetch just leaves
		// them empty.
		var related []models.Product
		if all, err := api.Products(ctx); err == nil {
			related = catalog.Related(all, *product, relatedLimit)
		}

		pageLink := "http://" + c.Request.Host + c.Request.URL.Path
		inquiry := builder.Link(builder.InquiryMessage(*product, c.Query("size"), pageLink))

		c.JSON(http.StatusOK, gin.H{
			"product":  product,
			"related":  related,
			"whatsapp": inquiry,
		})
	}
}
