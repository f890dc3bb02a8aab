package auth

import (
	"fmt"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/market_items/internal/logging"
	"github.com/Skotchmaster/market_items/internal/tokens"
)

const principalKey = "principal"

type Verifier interface {
	Verify(raw string) (*tokens.Principal, error)
}

// Gate rejects requests without a valid bearer token before they reach a
// handler and stores the verified principal in the echo context.
func Gate(v Verifier, realm string) echo.MiddlewareFunc {
	challenge := fmt.Sprintf("Bearer realm=%q", realm)

	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  principalKey,
		TokenLookup: "header:Authorization:Bearer ",
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			return v.Verify(raw)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logging.FromContext(c.Request().Context()).Info("auth_rejected", "reason", err.Error())
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, challenge)
			return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid or has expired")
		},
	})
}

// PrincipalFrom returns the identity stored by Gate.
func PrincipalFrom(c echo.Context) (*tokens.Principal, bool) {
	p, ok := c.Get(principalKey).(*tokens.Principal)
	return p, ok && p != nil
}
