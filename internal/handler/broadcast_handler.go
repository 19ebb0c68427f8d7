package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"safelink/backend/internal/broadcast"
	"safelink/backend/internal/glossary"
	"safelink/backend/internal/service"
	"safelink/backend/pkg/logger"
)

// LiveServer is the part of broadcast.Hub the handler needs.
type LiveServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request, role broadcast.Role, lang, name string) error
	ClientCount(role broadcast.Role) int
}

type BroadcastHandler struct {
	service service.BroadcastService
	auth    service.AuthService
	live    LiveServer
}

type broadcastRequest struct {
	Text string `json:"text"`
}

type announcementResponse struct {
	ID            string            `json:"id"`
	StandardText  string            `json:"standardText"`
	DetectedTerms []string          `json:"detectedTerms"`
	Translations  map[string]string `json:"translations"`
	Approximate   map[string]bool   `json:"approximate"`
	Delivered     int               `json:"delivered"`
}

type liveStatusResponse struct {
	Workers  int `json:"workers"`
	Managers int `json:"managers"`
}

func NewBroadcastHandler(service service.BroadcastService, auth service.AuthService, live LiveServer) *BroadcastHandler {
	return &BroadcastHandler{service: service, auth: auth, live: live}
}

func (h *BroadcastHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/broadcast/ws", h.Connect)
}

func (h *BroadcastHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/broadcast", h.Announce)
	g.GET("/broadcast/status", h.Status)
}

// Announce godoc
// @Summary      Broadcast an instruction to all workers
// @Tags         broadcast
// @Accept       json
// @Produce      json
// @Param        body  body      broadcastRequest  true  "instruction"
// @Success      200   {object}  announcementResponse
// @Failure      400   {object}  errorResponse
// @Router       /broadcast [post]
func (h *BroadcastHandler) Announce(c echo.Context) error {
	var req broadcastRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	a, err := h.service.Announce(c.Request().Context(), req.Text)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toAnnouncementResponse(a))
}

func (h *BroadcastHandler) Status(c echo.Context) error {
	if h.live == nil {
		return c.JSON(http.StatusOK, liveStatusResponse{})
	}
	return c.JSON(http.StatusOK, liveStatusResponse{
		Workers:  h.live.ClientCount(broadcast.RoleWorker),
		Managers: h.live.ClientCount(broadcast.RoleManager),
	})
}

// Connect upgrades to a websocket. Workers pass lang and name; managers must
// present a token in the query string or the auth cookie.
func (h *BroadcastHandler) Connect(c echo.Context) error {
	if h.live == nil {
		return Error(c, http.StatusServiceUnavailable, "live channel unavailable")
	}

	role := broadcast.RoleWorker
	switch strings.ToLower(strings.TrimSpace(c.QueryParam("role"))) {
	case "", string(broadcast.RoleWorker):
	case string(broadcast.RoleManager):
		role = broadcast.RoleManager
	default:
		return badRequest(c)
	}

	lang := ""
	if raw := strings.TrimSpace(c.QueryParam("lang")); raw != "" {
		l, ok := glossary.LookupLanguage(raw)
		if !ok {
			return badRequest(c)
		}
		lang = l.Key
	}
	if role == broadcast.RoleWorker && lang == "" {
		return badRequest(c)
	}

	if role == broadcast.RoleManager {
		token := c.QueryParam("token")
		if token == "" {
			if cookie, err := c.Cookie(AuthCookieName); err == nil {
				token = cookie.Value
			}
		}
		if token == "" || h.auth == nil {
			return Error(c, http.StatusUnauthorized, "unauthorized")
		}
		if ok, err := h.auth.ValidateToken(token); err != nil || !ok {
			return Error(c, http.StatusUnauthorized, "unauthorized")
		}
	}

	name := strings.TrimSpace(c.QueryParam("name"))
	if err := h.live.ServeWS(c.Response(), c.Request(), role, lang, name); err != nil {
		logger.Warn("websocket upgrade failed", "module", "handler", "action", "connect", "resource", "broadcast", "result", "failed", "error", err)
	}
	return nil
}

func toAnnouncementResponse(a *service.Announcement) announcementResponse {
	detected := a.DetectedTerms
	if detected == nil {
		detected = []string{}
	}
	return announcementResponse{
		ID:            a.ID,
		StandardText:  a.StandardText,
		DetectedTerms: detected,
		Translations:  a.Translations,
		Approximate:   a.Approximate,
		Delivered:     a.Delivered,
	}
}
