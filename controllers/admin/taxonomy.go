package adminController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trendora/storefront-api/apiclient"
	"github.com/trendora/storefront-api/models"
)

type categoryInput struct {
	Name string `json:"name" binding:"required"`
}

type subcategoryInput struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
}

type fitInput struct {
	Name        string `json:"name" binding:"required"`
	Subcategory string `json:"subcategory" binding:"required"`
}

// GET /admin/categories
func GetCategories(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := api.Categories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// POST /admin/categories
func CreateCategory(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input categoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		category, err := api.CreateCategory(c.Request.Context(), c.GetString("admin_token"), input.Name)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// PUT /admin/categories/:id
func UpdateCategory(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input categoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		err := api.UpdateCategory(c.Request.Context(), c.GetString("admin_token"), c.Param("id"), input.Name)
		respondTaxonomyMutation(c, err, "category")
	}
}

// DELETE /admin/categories/:id
func DeleteCategory(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := api.DeleteCategory(c.Request.Context(), c.GetString("admin_token"), c.Param("id"))
		respondTaxonomyMutation(c, err, "category")
	}
}

// GET /admin/subcategories
func GetSubcategories(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		subcategories, err := api.Subcategories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch subcategories"})
			return
		}
		c.JSON(http.StatusOK, subcategories)
	}
}

// POST /admin/subcategories
func CreateSubcategory(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input subcategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and category are required"})
			return
		}
		subcategory, err := api.CreateSubcategory(c.Request.Context(), c.GetString("admin_token"), input.Name, input.Category)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create subcategory"})
			return
		}
		c.JSON(http.StatusCreated, subcategory)
	}
}

// PUT /admin/subcategories/:id
func UpdateSubcategory(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input subcategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and category are required"})
			return
		}
		err := api.UpdateSubcategory(c.Request.Context(), c.GetString("admin_token"), c.Param("id"), input.Name, input.Category)
		respondTaxonomyMutation(c, err, "subcategory")
	}
}

// DELETE /admin/subcategories/:id
func DeleteSubcategory(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := api.DeleteSubcategory(c.Request.Context(), c.GetString("admin_token"), c.Param("id"))
		respondTaxonomyMutation(c, err, "subcategory")
	}
}

// GET /admin/fits
func GetFits(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		fits, err := api.Fits(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch fits"})
			return
		}
		c.JSON(http.StatusOK, fits)
	}
}

// POST /admin/fits
func CreateFit(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input fitInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and subcategory are required"})
			return
		}
		fit, err := api.CreateFit(c.Request.Context(), c.GetString("admin_token"), input.Name, input.Subcategory)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create fit"})
			return
		}
		c.JSON(http.StatusCreated, fit)
	}
}

// PUT /admin/fits/:id
func UpdateFit(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input fitInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and subcategory are required"})
			return
		}
		err := api.UpdateFit(c.Request.Context(), c.GetString("admin_token"), c.Param("id"), input.Name, input.Subcategory)
		respondTaxonomyMutation(c, err, "fit")
	}
}

// DELETE /admin/fits/:id
func DeleteFit(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := api.DeleteFit(c.Request.Context(), c.GetString("admin_token"), c.Param("id"))
		respondTaxonomyMutation(c, err, "fit")
	}
}

func respondTaxonomyMutation(c *gin.Context, err error, kind string) {
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": kind + " not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update " + kind})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OK"})
}
