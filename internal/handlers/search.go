package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/market_items/internal/service"
	"github.com/Skotchmaster/market_items/internal/util"
)

type SearchHandler struct {
	Catalog *service.CatalogService
}

func NewSearchHandler(catalog *service.CatalogService) *SearchHandler {
	return &SearchHandler{Catalog: catalog}
}

// FullText queries the search index over titles and descriptions.
func (h *SearchHandler) FullText(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return badRequest(c, "fulltext_search", msgWrongQuery, nil)
	}

	limit, skip, err := util.Window(c.QueryParam("limit"), c.QueryParam("skip"))
	if err != nil {
		return badRequest(c, "fulltext_search", err.Error(), nil)
	}

	res, err := h.Catalog.FullTextSearch(c.Request().Context(), q, limit, skip)
	if err != nil {
		return httpError(c, "fulltext_search", err)
	}
	return c.JSON(http.StatusOK, res)
}
