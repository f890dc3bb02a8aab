package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/market_items/internal/service"
	"github.com/Skotchmaster/market_items/internal/transport"
	"github.com/Skotchmaster/market_items/internal/util"
)

type UserHandler struct {
	Users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req transport.UserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "create_user", msgInvalidBody, err)
	}

	id, err := h.Users.Create(c.Request().Context(), req)
	if err != nil {
		return httpError(c, "create_user", err)
	}
	return c.JSON(http.StatusCreated, id)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		return badRequest(c, "get_user", err.Error(), nil)
	}

	user, err := h.Users.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(c, "get_user", err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		return badRequest(c, "update_user", err.Error(), nil)
	}

	var req transport.UserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "update_user", msgInvalidBody, err)
	}

	if err := h.Users.Update(c.Request().Context(), id, req); err != nil {
		return httpError(c, "update_user", err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		return badRequest(c, "delete_user", err.Error(), nil)
	}

	if err := h.Users.Delete(c.Request().Context(), id); err != nil {
		return httpError(c, "delete_user", err)
	}
	return c.NoContent(http.StatusOK)
}
