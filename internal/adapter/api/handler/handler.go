package handler

import (
	"lumera/internal/usecase"
)

var (
	productHandler *ProductHandler
	cartHandler    *CartHandler
	orderHandler   *OrderHandler
	couponHandler  *CouponHandler
	dealHandler    *DealHandler
	reviewHandler  *ReviewHandler
	uploadHandler  *UploadHandler
)

func Setup(
	productUseCase *usecase.ProductUseCase,
	cartUseCase *usecase.CartUseCase,
	orderUseCase *usecase.OrderUseCase,
	couponUseCase *usecase.CouponUseCase,
	dealUseCase *usecase.DealUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	uploadUseCase *usecase.UploadUseCase,
) {
	productHandler = NewProductHandler(productUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	couponHandler = NewCouponHandler(couponUseCase)
	dealHandler = NewDealHandler(dealUseCase, uploadUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	uploadHandler = NewUploadHandler(uploadUseCase)
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetCouponHandler() *CouponHandler {
	return couponHandler
}

func GetDealHandler() *DealHandler {
	return dealHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetUploadHandler() *UploadHandler {
	return uploadHandler
}
