package router

import (
	"lumera/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupCartRouter(e *echo.Echo) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/cart")
	cart.POST("/add", cartHandler.AddToCart)
	cart.PUT("/update/:id", cartHandler.UpdateQuantity)
	cart.DELETE("/remove/:id", cartHandler.RemoveItem)
	cart.DELETE("/clear/:userId", cartHandler.ClearCart)
	cart.GET("/:userId", cartHandler.ListCart)
}
