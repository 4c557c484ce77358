package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"swipeshop/internal/auth"
	"swipeshop/internal/config"
	"swipeshop/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	feedHandler *handler.FeedHandler,
	cartHandler *handler.CartHandler,
	sellerHandler *handler.SellerHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/me", authHandler.Me)

	// Feed routes
	secured.GET("/feed", feedHandler.Feed)
	secured.POST("/feed/release", feedHandler.Release)

	// Cart routes
	secured.GET("/cart", cartHandler.ListCart)
	secured.DELETE("/cart/:id", cartHandler.RemoveCartItem)
	secured.POST("/cart/checkout", cartHandler.Checkout)

	// Saved-for-later routes
	secured.GET("/saved", cartHandler.ListSaved)
	secured.DELETE("/saved/:id", cartHandler.RemoveSavedItem)
	secured.POST("/saved/:id/cart", cartHandler.MoveToCart)

	// Seller routes
	secured.GET("/seller/products", sellerHandler.ListProducts)
	secured.POST("/seller/products", sellerHandler.AddProduct)
	secured.DELETE("/seller/products/:id", sellerHandler.DeleteProduct)
	secured.GET("/seller/analytics", sellerHandler.Analytics)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
