package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"swipeshop/internal/auth"
)

// identity is the authenticated principal extracted from the access token.
type identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// identityFromContext reads the JWT placed on the context by the auth
// middleware and resolves it to an identity.
func identityFromContext(c echo.Context) (*identity, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid user id in token")
	}
	return &identity{
		UserID: userID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
