package router

import (
	"lumera/internal/adapter/api/handler"
	"lumera/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	reviews := e.Group("/reviews")
	reviews.GET("/:productId", reviewHandler.ListByProduct)

	authed := e.Group("/reviews")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("/add", reviewHandler.CreateReview)
}
