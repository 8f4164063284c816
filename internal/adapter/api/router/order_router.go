package router

import (
	"lumera/internal/adapter/api/handler"
	"lumera/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/orders")
	orders.POST("/create-order", orderHandler.CreateOrder)
	orders.GET("/order/:id", orderHandler.GetOrder)
	orders.GET("/:email", orderHandler.ListOrdersByEmail)

	admin := e.Group("/orders")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", orderHandler.ListAllOrders)
	admin.PATCH("/update-order-status/:id", orderHandler.UpdateOrderStatus)
	admin.DELETE("/delete-order/:id", orderHandler.DeleteOrder)
}
