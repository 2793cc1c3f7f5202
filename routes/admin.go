package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/trendora/storefront-api/controllers/admin"
	"github.com/trendora/storefront-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Login is public;
// everything else requires the stored admin session.
func SetupAdminRoutes(r *gin.Engine, s Services) {
	r.POST("/admin/login", adminController.Login(s.API, s.Admins))

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(s.Admins))
	{
		adminGroup.POST("/logout", adminController.Logout(s.Admins))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", adminController.GetProducts(s.API))
			productAdmin.POST("", adminController.CreateProduct(s.API))
			productAdmin.PUT("/:id", adminController.UpdateProduct(s.API))
			productAdmin.DELETE("/:id", adminController.DeleteProduct(s.API))
			productAdmin.GET("/export-excel", adminController.ExportProductsToExcel(s.API))
		}

		// ─────────── Taxonomy Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", adminController.GetCategories(s.API))
			categoryAdmin.POST("", adminController.CreateCategory(s.API))
			categoryAdmin.PUT("/:id", adminController.UpdateCategory(s.API))
			categoryAdmin.DELETE("/:id", adminController.DeleteCategory(s.API))
		}
		subcategoryAdmin := adminGroup.Group("/subcategories")
		{
			subcategoryAdmin.GET("", adminController.GetSubcategories(s.API))
			subcategoryAdmin.POST("", adminController.CreateSubcategory(s.API))
			subcategoryAdmin.PUT("/:id", adminController.UpdateSubcategory(s.API))
			subcategoryAdmin.DELETE("/:id", adminController.DeleteSubcategory(s.API))
		}
		fitAdmin := adminGroup.Group("/fits")
		{
			fitAdmin.GET("", adminController.GetFits(s.API))
			fitAdmin.POST("", adminController.CreateFit(s.API))
			fitAdmin.PUT("/:id", adminController.UpdateFit(s.API))
			fitAdmin.DELETE("/:id", adminController.DeleteFit(s.API))
		}

		// ─────────── User Management ───────────
		adminGroup.GET("/users", adminController.GetUsers(s.API))
		adminGroup.PUT("/users/:id/block", adminController.BlockUser(s.API))
	}
}
