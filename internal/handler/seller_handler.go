package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"swipeshop/internal/errors"
	"swipeshop/internal/service"
)

// SellerHandler handles seller dashboard endpoints.
type SellerHandler struct {
	sellerService service.SellerService
}

// NewSellerHandler creates a new seller handler.
func NewSellerHandler(sellerService service.SellerService) *SellerHandler {
	return &SellerHandler{sellerService: sellerService}
}

// AddProductRequest represents an add-product request. Price arrives as a
// string and is the only field validated beyond its presence.
type AddProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}

// ListProducts godoc
// @Summary List the seller's products
// @Tags seller
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seller/products [get]
func (h *SellerHandler) ListProducts(c echo.Context) error {
	ident, err := identityFromContext(c)
	if err != nil {
		return err
	}

	products, err := h.sellerService.Products(c.Request().Context(), ident.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

// AddProduct godoc
// @Summary Add a product
// @Tags seller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddProductRequest true "Product data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seller/products [post]
func (h *SellerHandler) AddProduct(c echo.Context) error {
	ident, err := identityFromContext(c)
	if err != nil {
		return err
	}

	var req AddProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.sellerService.AddProduct(c.Request().Context(), ident.UserID, service.NewProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "product created",
		"product": product,
	})
}

// DeleteProduct godoc
// @Summary Delete an owned product
// @Tags seller
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seller/products/{id} [delete]
func (h *SellerHandler) DeleteProduct(c echo.Context) error {
	ident, err := identityFromContext(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid product ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.sellerService.DeleteProduct(c.Request().Context(), ident.UserID, productID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "product deleted"})
}

// Analytics godoc
// @Summary Seller engagement analytics
// @Tags seller
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Analytics
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seller/analytics [get]
func (h *SellerHandler) Analytics(c echo.Context) error {
	ident, err := identityFromContext(c)
	if err != nil {
		return err
	}

	stats, err := h.sellerService.Analytics(c.Request().Context(), ident.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, stats)
}
