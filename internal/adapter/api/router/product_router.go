package router

import (
	"lumera/internal/adapter/api/handler"
	"lumera/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/product")
	products.GET("", productHandler.ListProducts)
	products.GET("/search", productHandler.SearchProducts)
	products.GET("/trending", productHandler.TrendingProducts)
	products.GET("/related/:id", productHandler.RelatedProducts)
	products.GET("/:id", productHandler.GetProduct)

	admin := e.Group("/product")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("/create-product", productHandler.CreateProduct)
	admin.PATCH("/update-product/:id", productHandler.UpdateProduct)
	admin.DELETE("/:id", productHandler.DeleteProduct)
}
