package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"swipeshop/internal/errors"
	"swipeshop/internal/service"
)

// FeedHandler handles the shopper feed and swipe gestures.
type FeedHandler struct {
	feedService service.FeedService
}

// NewFeedHandler creates a new feed handler.
func NewFeedHandler(feedService service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// ReleaseRequest represents a gesture release: the card and the horizontal
// displacement at the moment the pointer lifted.
type ReleaseRequest struct {
	ProductID    string  `json:"product_id" validate:"required,uuid"`
	Displacement float64 `json:"displacement"`
}

// Feed godoc
// @Summary Shopper product feed
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /feed [get]
func (h *FeedHandler) Feed(c echo.Context) error {
	ident, err := identityFromContext(c)
	if err != nil {
		return err
	}

	products, err := h.feedService.Feed(c.Request().Context(), ident.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

// Release godoc
// @Summary Resolve a swipe gesture release
// @Tags feed
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ReleaseRequest true "Gesture release"
// @Success 200 {object} service.ReleaseResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /feed/release [post]
func (h *FeedHandler) Release(c echo.Context) error {
	ident, err := identityFromContext(c)
	if err != nil {
		return err
	}

	var req ReleaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid product_id",
			Code:  "INVALID_UUID",
		})
	}

	result, err := h.feedService.Release(c.Request().Context(), ident.UserID, productID, req.Displacement)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, result)
}
