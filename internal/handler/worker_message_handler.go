package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"safelink/backend/internal/model"
	"safelink/backend/internal/service"
)

type WorkerMessageHandler struct {
	service service.WorkerMessageService
}

type workerMessageRequest struct {
	WorkerName     string `json:"workerName"`
	WorkerCountry  string `json:"workerCountry"`
	WorkerLanguage string `json:"workerLanguage"`
	Message        string `json:"message"`
	IsUrgent       bool   `json:"isUrgent"`
}

type workerMessageResponse struct {
	ID             string  `json:"id"`
	WorkerName     string  `json:"workerName"`
	WorkerCountry  *string `json:"workerCountry,omitempty"`
	WorkerLanguage string  `json:"workerLanguage"`
	Message        string  `json:"message"`
	Translated     string  `json:"translated"`
	IsUrgent       bool    `json:"isUrgent"`
	IsRead         bool    `json:"isRead"`
	CreatedAt      string  `json:"createdAt"`
}

type workerMessageListResponse struct {
	Messages    []workerMessageResponse `json:"messages"`
	UnreadCount int                     `json:"unreadCount"`
}

type markAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func NewWorkerMessageHandler(service service.WorkerMessageService) *WorkerMessageHandler {
	return &WorkerMessageHandler{service: service}
}

func (h *WorkerMessageHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/worker/message", h.Submit)
}

func (h *WorkerMessageHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/worker/message", h.List)
	g.PUT("/worker/message/read-all", h.MarkAllRead)
	g.PUT("/worker/message/:id/read", h.MarkRead)
}

// Submit godoc
// @Summary      Send a message from a worker to the managers
// @Tags         worker
// @Accept       json
// @Produce      json
// @Param        body  body      workerMessageRequest  true  "message"
// @Success      201   {object}  workerMessageResponse
// @Failure      400   {object}  errorResponse
// @Router       /worker/message [post]
func (h *WorkerMessageHandler) Submit(c echo.Context) error {
	var req workerMessageRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	msg, err := h.service.Submit(c.Request().Context(), service.WorkerMessageInput{
		WorkerName:     req.WorkerName,
		WorkerCountry:  req.WorkerCountry,
		WorkerLanguage: req.WorkerLanguage,
		Message:        req.Message,
		IsUrgent:       req.IsUrgent,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toWorkerMessageResponse(*msg))
}

func (h *WorkerMessageHandler) List(c echo.Context) error {
	unreadOnly, ok := queryFlag(c, "unread")
	if !ok {
		return badRequest(c)
	}
	list, err := h.service.List(c.Request().Context(), unreadOnly)
	if err != nil {
		return writeServiceError(c, err)
	}
	resp := workerMessageListResponse{
		Messages:    make([]workerMessageResponse, 0, len(list.Messages)),
		UnreadCount: list.UnreadCount,
	}
	for _, m := range list.Messages {
		resp.Messages = append(resp.Messages, toWorkerMessageResponse(m))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *WorkerMessageHandler) MarkRead(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c)
	}
	if err := h.service.MarkRead(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *WorkerMessageHandler) MarkAllRead(c echo.Context) error {
	n, err := h.service.MarkAllRead(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, markAllReadResponse{Updated: n})
}

func toWorkerMessageResponse(m model.WorkerMessage) workerMessageResponse {
	return workerMessageResponse{
		ID:             itoa(m.ID),
		WorkerName:     m.WorkerName,
		WorkerCountry:  m.WorkerCountry,
		WorkerLanguage: m.WorkerLanguage,
		Message:        m.Message,
		Translated:     m.Translated,
		IsUrgent:       m.IsUrgent,
		IsRead:         m.IsRead,
		CreatedAt:      formatTime(m.CreatedAt),
	}
}
