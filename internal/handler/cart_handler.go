package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"swipeshop/internal/errors"
	"swipeshop/internal/service"
)

// CartHandler handles cart and saved-for-later endpoints.
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func parseItemID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid item ID",
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}

// ListCart godoc
// @Summary List the caller's cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cart [get]
func (h *CartHandler) ListCart(c echo.Context) error {
	ident, err := identityFromContext(c)
	if err != nil {
		return err
	}

	items, err := h.cartService.ListCart(c.Request().Context(), ident.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// RemoveCartItem godoc
// @Summary Remove a cart row
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart item ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cart/{id} [delete]
func (h *CartHandler) RemoveCartItem(c echo.Context) error {
	ident, err := identityFromContext(c)
	if err != nil {
		return err
	}
	itemID, err := parseItemID(c)
	if err != nil {
		return err
	}

	if err := h.cartService.RemoveCartItem(c.Request().Context(), ident.UserID, itemID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "item removed"})
}

// Checkout godoc
// @Summary Check out the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.CheckoutSummary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c echo.Context) error {
	ident, err := identityFromContext(c)
	if err != nil {
		return err
	}

	summary, err := h.cartService.Checkout(c.Request().Context(), ident.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, summary)
}

// ListSaved godoc
// @Summary List the caller's saved items
// @Tags saved
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /saved [get]
func (h *CartHandler) ListSaved(c echo.Context) error {
	ident, err := identityFromContext(c)
	if err != nil {
		return err
	}

	items, err := h.cartService.ListSaved(c.Request().Context(), ident.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// RemoveSavedItem godoc
// @Summary Remove a saved row
// @Tags saved
// @Produce json
// @Security BearerAuth
// @Param id path string true "Saved item ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /saved/{id} [delete]
func (h *CartHandler) RemoveSavedItem(c echo.Context) error {
	ident, err := identityFromContext(c)
	if err != nil {
		return err
	}
	itemID, err := parseItemID(c)
	if err != nil {
		return err
	}

	if err := h.cartService.RemoveSavedItem(c.Request().Context(), ident.UserID, itemID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "item removed"})
}

// MoveToCart godoc
// @Summary Move a saved item into the cart
// @Tags saved
// @Produce json
// @Security BearerAuth
// @Param id path string true "Saved item ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /saved/{id}/cart [post]
func (h *CartHandler) MoveToCart(c echo.Context) error {
	ident, err := identityFromContext(c)
	if err != nil {
		return err
	}
	itemID, err := parseItemID(c)
	if err != nil {
		return err
	}

	if err := h.cartService.MoveToCart(c.Request().Context(), ident.UserID, itemID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "item moved to cart"})
}
