package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"safelink/backend/internal/service"
)

type CatalogHandler struct {
	service service.CatalogService
}

type quickCommandResponse struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

type siteResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
	Active bool   `json:"active"`
}

func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/quick-commands", h.QuickCommands)
	g.GET("/sites", h.Sites)
}

func (h *CatalogHandler) QuickCommands(c echo.Context) error {
	cmds := h.service.QuickCommands(c.Request().Context())
	out := make([]quickCommandResponse, 0, len(cmds))
	for _, q := range cmds {
		out = append(out, quickCommandResponse{ID: q.ID, Text: q.Text, Icon: q.Icon, Category: q.Category})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) Sites(c echo.Context) error {
	activeOnly, ok := queryFlag(c, "active")
	if !ok {
		return badRequest(c)
	}
	sites := h.service.Sites(c.Request().Context(), activeOnly)
	out := make([]siteResponse, 0, len(sites))
	for _, s := range sites {
		out = append(out, siteResponse{ID: s.ID, Name: s.Name, Region: s.Region, Active: s.Active})
	}
	return c.JSON(http.StatusOK, out)
}
