package handler

import (
	"strconv"

	"lumera/internal/usecase"
	"lumera/pkg/errors"
	"lumera/pkg/response"
	"lumera/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type createProductRequest struct {
	Name             string   `json:"name" validate:"required"`
	Category         string   `json:"category" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	Price            float64  `json:"price" validate:"required,gt=0"`
	OldPrice         float64  `json:"oldPrice"`
	Image            string   `json:"image" validate:"required"`
	AdditionalImages []string `json:"additionalImages"`
	Size             string   `json:"size"`
	Color            string   `json:"color"`
	Metal            string   `json:"metal"`
	Author           string   `json:"author" validate:"required"`
	IsTrending       bool     `json:"isTrending"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request payload", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:             req.Name,
		Category:         req.Category,
		Description:      req.Description,
		Price:            req.Price,
		OldPrice:         req.OldPrice,
		Image:            req.Image,
		AdditionalImages: req.AdditionalImages,
		Size:             req.Size,
		Color:            req.Color,
		Metal:            req.Metal,
		AuthorID:         req.Author,
		IsTrending:       req.IsTrending,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) SearchProducts(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return response.Error(c, errors.BadRequest("Search query is required", nil))
	}

	products, err := h.productUseCase.SearchProducts(c.Request().Context(), query)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	category := c.QueryParam("category")
	color := c.QueryParam("color")
	minPrice := c.QueryParam("minPrice")
	maxPrice := c.QueryParam("maxPrice")

	pagination := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.ListProducts(
		c.Request().Context(),
		category,
		color,
		minPrice,
		maxPrice,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) TrendingProducts(c echo.Context) error {
	products, err := h.productUseCase.TrendingProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")

	detail, err := h.productUseCase.GetProductDetail(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, detail)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Param("id")

	var req usecase.UpdateProductInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request payload", err))
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), id, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Product updated successfully",
		"product": product,
	})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")

	result, err := h.productUseCase.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	message := "Product and associated reviews deleted successfully"
	if result.CascadeFailed {
		message = "Product deleted; some associated reviews could not be removed"
	}

	return response.Success(c, map[string]interface{}{
		"message":        message,
		"reviewsDeleted": result.ReviewsDeleted,
	})
}

func (h *ProductHandler) RelatedProducts(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	products, err := h.productUseCase.RelatedProducts(c.Request().Context(), id, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}
