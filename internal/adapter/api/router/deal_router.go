package router

import (
	"lumera/internal/adapter/api/handler"
	"lumera/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupDealRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	dealHandler := handler.GetDealHandler()

	e.GET("/deal", dealHandler.GetDeal)

	admin := e.Group("/deal")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.PUT("", dealHandler.UpsertDeal)
	admin.POST("/uploadImage", dealHandler.UploadDealImage)
}
