package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/market_items/internal/config"
	"github.com/Skotchmaster/market_items/internal/db"
	"github.com/Skotchmaster/market_items/internal/handlers"
	"github.com/Skotchmaster/market_items/internal/logging"
	"github.com/Skotchmaster/market_items/internal/middleware/auth"
	"github.com/Skotchmaster/market_items/internal/middleware/ratelimit"
)

type Deps struct {
	DB       *gorm.DB
	Variant  string
	Verifier auth.Verifier
	Realm    string

	AuthRateRPS   float64
	AuthRateBurst int

	ProductHandler *handlers.ProductHandler
	SearchHandler  *handlers.SearchHandler
	AuthHandler    *handlers.AuthHandler
	UserHandler    *handlers.UserHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context(), d.DB); err != nil {
			logging.FromContext(c.Request().Context()).Error("readiness_failed", "error", err)
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	})

	gate := auth.Gate(d.Verifier, d.Realm)
	limit := ratelimit.PerIP(d.AuthRateRPS, d.AuthRateBurst)

	authGroup := e.Group("/auth")
	authGroup.POST("/register", d.AuthHandler.Register, limit)
	authGroup.POST("/login", d.AuthHandler.Login, limit)
	authGroup.GET("/me", d.AuthHandler.Me, gate)

	if d.Variant == config.VariantPlain {
		registerPlain(e, d)
		return
	}
	registerSecured(e, d, gate)
}

func registerSecured(e *echo.Echo, d *Deps, gate echo.MiddlewareFunc) {
	products := e.Group("/products", gate)

	products.POST("", d.ProductHandler.CreateProducts)
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/categories", d.ProductHandler.GetCategories)
	products.GET("/category/:category", d.ProductHandler.GetByCategory)
	products.GET("/search", d.ProductHandler.SearchProducts)
	products.GET("/search/fulltext", d.SearchHandler.FullText)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)
}

func registerPlain(e *echo.Echo, d *Deps) {
	items := e.Group("/market_items")

	items.POST("", d.ProductHandler.CreateProduct)
	items.GET("/:id", d.ProductHandler.GetProduct)
	items.PUT("/:id", d.ProductHandler.UpdateProduct)
	items.DELETE("/:id", d.ProductHandler.DeleteProduct)

	users := e.Group("/users")

	users.POST("", d.UserHandler.CreateUser)
	users.GET("/:id", d.UserHandler.GetUser)
	users.PUT("/:id", d.UserHandler.UpdateUser)
	users.DELETE("/:id", d.UserHandler.DeleteUser)
}
