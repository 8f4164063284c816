package router

import (
	"lumera/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupProductRouter(e, authMiddleware, adminMiddleware)
	SetupCartRouter(e)
	SetupOrderRouter(e, authMiddleware, adminMiddleware)
	SetupCouponRouter(e, authMiddleware, adminMiddleware)
	SetupDealRouter(e, authMiddleware, adminMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupUploadRouter(e)
	SetupHealthRouter(e)
}
