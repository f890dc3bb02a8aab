package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/market_items/internal/logging"
	authmw "github.com/Skotchmaster/market_items/internal/middleware/auth"
	"github.com/Skotchmaster/market_items/internal/service"
	"github.com/Skotchmaster/market_items/internal/transport"
)

type AuthHandler struct {
	Auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req transport.UserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "register", msgInvalidBody, err)
	}

	token, err := h.Auth.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInternal) {
			logging.FromContext(c.Request().Context()).Error("register_failed", "status", http.StatusInternalServerError, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "User creation failed").SetInternal(err)
		}
		return httpError(c, "register", err)
	}

	logging.FromContext(c.Request().Context()).Info("user_registered")
	return c.JSON(http.StatusCreated, transport.TokenResponse{Token: token})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req transport.UserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "login", msgInvalidBody, err)
	}

	token, err := h.Auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(c, "login", err)
	}
	return c.JSON(http.StatusOK, transport.TokenResponse{Token: token})
}

// Me returns the account of the token holder.
func (h *AuthHandler) Me(c echo.Context) error {
	p, ok := authmw.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, msgUnauthorized)
	}

	user, err := h.Auth.Me(c.Request().Context(), p.Email)
	if err != nil {
		return httpError(c, "me", err)
	}
	return c.JSON(http.StatusOK, user)
}
