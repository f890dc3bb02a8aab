package httpserver

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	loggingmw "github.com/Skotchmaster/market_items/internal/middleware/logging"
)

// NewEcho builds the echo instance shared by every variant. Client IPs come
// from the connection only; forwarded headers are not trusted. The request
// logger wraps Recover and renders the recovered error, so panics still
// produce a request line.
func NewEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.IPExtractor = echo.ExtractIPDirect()

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(
		middleware.RequestID(),
		loggingmw.RequestLogger(logger),
		middleware.RecoverWithConfig(middleware.RecoverConfig{DisableErrorHandler: true}),
		middleware.Secure(),
	)
	return e
}
