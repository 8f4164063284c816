package router

import (
	"lumera/internal/adapter/api/handler"
	"lumera/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCouponRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	couponHandler := handler.GetCouponHandler()

	coupon := e.Group("/coupon")
	coupon.POST("/validate", couponHandler.ValidateCoupon)

	admin := e.Group("/coupon")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("/add", couponHandler.CreateCoupon)
}
