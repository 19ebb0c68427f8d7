package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"safelink/backend/internal/model"
	"safelink/backend/internal/service"
)

type SavedMessageHandler struct {
	service service.SavedMessageService
}

type savedMessageRequest struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

type savedMessageResponse struct {
	ID           string `json:"id"`
	Category     string `json:"category"`
	OriginalText string `json:"originalText"`
	StandardText string `json:"standardText"`
	UsageCount   int    `json:"usageCount"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

func NewSavedMessageHandler(service service.SavedMessageService) *SavedMessageHandler {
	return &SavedMessageHandler{service: service}
}

// RegisterProtectedRoutes registers the saved message routes. All of them
// are manager-only.
func (h *SavedMessageHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/messages", h.List)
	g.POST("/messages", h.Create)
	g.GET("/messages/:id", h.Get)
	g.PUT("/messages/:id", h.Update)
	g.DELETE("/messages/:id", h.Delete)
	g.POST("/messages/:id/broadcast", h.Broadcast)
}

func (h *SavedMessageHandler) List(c echo.Context) error {
	msgs, err := h.service.List(c.Request().Context(), c.QueryParam("category"), c.QueryParam("q"))
	if err != nil {
		return writeServiceError(c, err)
	}
	out := make([]savedMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toSavedMessageResponse(m))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SavedMessageHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c)
	}
	msg, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSavedMessageResponse(*msg))
}

func (h *SavedMessageHandler) Create(c echo.Context) error {
	var req savedMessageRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	msg, err := h.service.Create(c.Request().Context(), req.Category, req.Text)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toSavedMessageResponse(*msg))
}

func (h *SavedMessageHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c)
	}
	var req savedMessageRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	msg, err := h.service.Update(c.Request().Context(), id, req.Category, req.Text)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSavedMessageResponse(*msg))
}

func (h *SavedMessageHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c)
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Broadcast sends the stored text to every connected worker.
func (h *SavedMessageHandler) Broadcast(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c)
	}
	a, err := h.service.Broadcast(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toAnnouncementResponse(a))
}

func toSavedMessageResponse(m model.SavedMessage) savedMessageResponse {
	return savedMessageResponse{
		ID:           itoa(m.ID),
		Category:     m.Category,
		OriginalText: m.OriginalText,
		StandardText: m.StandardText,
		UsageCount:   m.UsageCount,
		CreatedAt:    formatTime(m.CreatedAt),
		UpdatedAt:    formatTime(m.UpdatedAt),
	}
}
