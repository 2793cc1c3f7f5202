package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trendora/storefront-api/apiclient"
	"github.com/trendora/storefront-api/cart"
	"github.com/trendora/storefront-api/checkout"
	"github.com/trendora/storefront-api/models"
)

type AddItemInput struct {
	ProductID    string `json:"product_id" binding:"required"`
	SelectedSize string `json:"selected_size"`
}

// AddCartItem validates the product against the catalog, then adds its
// snapshot to the cart (or bumps the quantity when already present).
//
// POST /cart
func AddCartItem(store *cart.Store, api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := api.Product(c.Request.Context(), input.ProductID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to validate product"})
			return
		}

		if err := store.Add(*product, input.SelectedSize); err != nil {
			if errors.Is(err, models.ErrLoginRequired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to add to cart", "redirect": "/login"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"items": store.Entries(), "total": store.Total()})
	}
}

// GetCart returns the entries and the grand total.
//
// GET /cart
func GetCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": store.Entries(), "total": store.Total()})
	}
}

// DeleteCartItem removes one product's entry.
//
// DELETE /cart/:product_id
func DeleteCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.Remove(c.Param("product_id"))
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted", "items": store.Entries()})
	}
}

// ClearCart empties the cart.
//
// DELETE /cart
func ClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// Checkout serializes the cart into the order message and hands back the
// WhatsApp deep link. An empty cart is a no-op.
//
// POST /cart/checkout
func Checkout(store *cart.Store, builder *checkout.Builder) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries := store.Entries()
		link, ok := builder.OrderLink(entries, store.Total())
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"link":    link,
			"message": builder.OrderMessage(entries, store.Total()),
		})
	}
}
