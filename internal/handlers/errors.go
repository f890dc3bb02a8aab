package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/market_items/internal/logging"
	"github.com/Skotchmaster/market_items/internal/repo"
	"github.com/Skotchmaster/market_items/internal/service"
)

const (
	msgInvalidBody  = "Invalid request body"
	msgWrongQuery   = "Wrong query params"
	msgNotFound     = "Not found"
	msgInternal     = "Internal server error"
	msgUnauthorized = "Invalid email or password"
)

// httpError maps a service error onto a status code and logs it as op.
func httpError(c echo.Context, op string, err error) error {
	l := logging.FromContext(c.Request().Context())

	var (
		code int
		msg  string
	)
	switch {
	case errors.Is(err, service.ErrValidation):
		code, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, repo.ErrNotFound):
		code, msg = http.StatusNotFound, msgNotFound
	case errors.Is(err, service.ErrConflict):
		code, msg = http.StatusConflict, "User already exists"
	case errors.Is(err, service.ErrInvalidCredentials):
		code, msg = http.StatusUnauthorized, msgUnauthorized
	case errors.Is(err, service.ErrSearchUnavailable):
		code, msg = http.StatusServiceUnavailable, err.Error()
	default:
		l.Error(op+"_failed", "status", http.StatusInternalServerError, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, msgInternal).SetInternal(err)
	}

	l.Info(op+"_failed", "status", code, "reason", err.Error())
	return echo.NewHTTPError(code, msg)
}

func badRequest(c echo.Context, op, msg string, err error) error {
	logging.FromContext(c.Request().Context()).Info(op+"_failed", "status", http.StatusBadRequest, "reason", errString(err, msg))
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}

func errString(err error, def string) string {
	if err == nil {
		return def
	}
	return err.Error()
}
