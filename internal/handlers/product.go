package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/market_items/internal/service"
	"github.com/Skotchmaster/market_items/internal/transport"
	"github.com/Skotchmaster/market_items/internal/util"
)

type ProductHandler struct {
	Catalog *service.CatalogService
}

func NewProductHandler(catalog *service.CatalogService) *ProductHandler {
	return &ProductHandler{Catalog: catalog}
}

// CreateProducts accepts a batch and answers with the new ids in order.
func (h *ProductHandler) CreateProducts(c echo.Context) error {
	var req []transport.MarketItem
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "create_products", msgInvalidBody, err)
	}

	ids, err := h.Catalog.CreateItems(c.Request().Context(), req)
	if err != nil {
		return httpError(c, "create_products", err)
	}
	return c.JSON(http.StatusCreated, ids)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req transport.MarketItem
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "create_product", msgInvalidBody, err)
	}

	id, err := h.Catalog.CreateItem(c.Request().Context(), req)
	if err != nil {
		return httpError(c, "create_product", err)
	}
	return c.JSON(http.StatusCreated, id)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		return badRequest(c, "get_product", err.Error(), nil)
	}

	item, err := h.Catalog.GetItem(c.Request().Context(), id)
	if err != nil {
		return httpError(c, "get_product", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	limit, skip, err := util.Window(c.QueryParam("limit"), c.QueryParam("skip"))
	if err != nil {
		return badRequest(c, "get_products", err.Error(), nil)
	}

	items, err := h.Catalog.ListItems(c.Request().Context(), limit, skip)
	if err != nil {
		return httpError(c, "get_products", err)
	}
	return c.JSON(http.StatusOK, transport.MarketItemsContainer{Products: items})
}

func (h *ProductHandler) GetCategories(c echo.Context) error {
	cats, err := h.Catalog.ListCategories(c.Request().Context())
	if err != nil {
		return httpError(c, "get_categories", err)
	}
	return c.JSON(http.StatusOK, cats)
}

func (h *ProductHandler) GetByCategory(c echo.Context) error {
	items, err := h.Catalog.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return httpError(c, "get_by_category", err)
	}
	return c.JSON(http.StatusOK, transport.MarketItemsContainer{Products: items})
}

// SearchProducts matches titles by prefix. An empty q matches everything, a
// missing q is rejected.
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	if !c.QueryParams().Has("q") {
		return badRequest(c, "search_products", msgWrongQuery, nil)
	}

	items, err := h.Catalog.SearchItems(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return httpError(c, "search_products", err)
	}
	return c.JSON(http.StatusOK, transport.MarketItemsContainer{Products: items})
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		return badRequest(c, "update_product", err.Error(), nil)
	}

	var req transport.MarketItem
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "update_product", msgInvalidBody, err)
	}

	if err := h.Catalog.UpdateItem(c.Request().Context(), id, req); err != nil {
		return httpError(c, "update_product", err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		return badRequest(c, "delete_product", err.Error(), nil)
	}

	if err := h.Catalog.DeleteItem(c.Request().Context(), id); err != nil {
		return httpError(c, "delete_product", err)
	}
	return c.NoContent(http.StatusOK)
}
