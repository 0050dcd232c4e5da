package routes

import (
	"github.com/fadhlanhapp/sharetab-checkout/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, svc *handlers.HandlerServices) {
	handlers.InitHandlers(svc)

	router.GET("/healthz", handlers.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Cart endpoints
		v1.POST("/carts/calculate", handlers.CalculateCart)
		v1.POST("/carts/export", handlers.ExportCartToExcel)

		// Pricing endpoints
		v1.GET("/pricing/policy", handlers.GetPricingPolicy)
	}
}
