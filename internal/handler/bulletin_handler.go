package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"safelink/backend/internal/model"
	"safelink/backend/internal/service"
	"safelink/backend/pkg/logger"
)

type BulletinHandler struct {
	service service.BulletinService
}

type bulletinSourceRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type bulletinSourceResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	URL          string  `json:"url"`
	ErrorMessage *string `json:"errorMessage,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

type bulletinResponse struct {
	ID          string  `json:"id"`
	SourceID    string  `json:"sourceId"`
	Title       string  `json:"title"`
	URL         *string `json:"url,omitempty"`
	Summary     *string `json:"summary,omitempty"`
	PublishedAt *string `json:"publishedAt,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

type refreshStatusResponse struct {
	IsRefreshing    bool    `json:"isRefreshing"`
	LastRefreshedAt *string `json:"lastRefreshedAt,omitempty"`
}

func NewBulletinHandler(service service.BulletinService) *BulletinHandler {
	return &BulletinHandler{service: service}
}

func (h *BulletinHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/bulletins", h.List)
}

func (h *BulletinHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/bulletins/sources", h.ListSources)
	g.POST("/bulletins/sources", h.AddSource)
	g.DELETE("/bulletins/sources/:id", h.DeleteSource)
	g.POST("/bulletins/sources/:id/refresh", h.RefreshSource)
	g.POST("/bulletins/refresh", h.RefreshAll)
	g.GET("/bulletins/refresh/status", h.RefreshStatus)
}

func (h *BulletinHandler) List(c echo.Context) error {
	limit, ok := queryLimit(c)
	if !ok {
		return badRequest(c)
	}
	items, err := h.service.List(c.Request().Context(), limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	out := make([]bulletinResponse, 0, len(items))
	for _, b := range items {
		out = append(out, toBulletinResponse(b))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BulletinHandler) ListSources(c echo.Context) error {
	sources, err := h.service.ListSources(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	out := make([]bulletinSourceResponse, 0, len(sources))
	for _, s := range sources {
		out = append(out, toBulletinSourceResponse(s))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BulletinHandler) AddSource(c echo.Context) error {
	var req bulletinSourceRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	src, err := h.service.AddSource(c.Request().Context(), req.Title, req.URL)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toBulletinSourceResponse(*src))
}

func (h *BulletinHandler) DeleteSource(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c)
	}
	if err := h.service.DeleteSource(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *BulletinHandler) RefreshSource(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c)
	}
	if err := h.service.RefreshSource(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RefreshAll starts a background refresh and returns immediately.
func (h *BulletinHandler) RefreshAll(c echo.Context) error {
	if h.service.GetRefreshStatus().IsRefreshing {
		return Error(c, http.StatusConflict, service.ErrAlreadyRefreshing.Error())
	}
	go func() {
		if err := h.service.RefreshAll(context.Background()); err != nil && !errors.Is(err, service.ErrAlreadyRefreshing) {
			logger.Error("bulletin refresh failed", "module", "handler", "action", "refresh", "resource", "bulletin", "result", "failed", "error", err)
		}
	}()
	return c.NoContent(http.StatusAccepted)
}

func (h *BulletinHandler) RefreshStatus(c echo.Context) error {
	st := h.service.GetRefreshStatus()
	return c.JSON(http.StatusOK, refreshStatusResponse{
		IsRefreshing:    st.IsRefreshing,
		LastRefreshedAt: formatTimePtr(st.LastRefreshedAt),
	})
}

func toBulletinSourceResponse(s model.BulletinSource) bulletinSourceResponse {
	return bulletinSourceResponse{
		ID:           itoa(s.ID),
		Title:        s.Title,
		URL:          s.URL,
		ErrorMessage: s.ErrorMessage,
		CreatedAt:    formatTime(s.CreatedAt),
		UpdatedAt:    formatTime(s.UpdatedAt),
	}
}

func toBulletinResponse(b model.Bulletin) bulletinResponse {
	return bulletinResponse{
		ID:          itoa(b.ID),
		SourceID:    itoa(b.SourceID),
		Title:       b.Title,
		URL:         b.URL,
		Summary:     b.Summary,
		PublishedAt: formatTimePtr(b.PublishedAt),
		CreatedAt:   formatTime(b.CreatedAt),
	}
}
