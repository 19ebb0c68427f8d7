package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"safelink/backend/internal/service"
)

type SettingsHandler struct {
	service service.SettingsService
}

type aiSettingsRequest struct {
	Provider        string `json:"provider"`
	APIKey          string `json:"apiKey"`
	BaseURL         string `json:"baseUrl"`
	Model           string `json:"model"`
	Endpoint        string `json:"endpoint"`
	Thinking        bool   `json:"thinking"`
	ReasoningEffort string `json:"reasoningEffort"`
	MaxTokens       int    `json:"maxTokens"`
	Verify          bool   `json:"verify"`
	RateLimit       int    `json:"rateLimit"`
}

type aiSettingsResponse struct {
	Provider        string `json:"provider"`
	APIKey          string `json:"apiKey"`
	BaseURL         string `json:"baseUrl"`
	Model           string `json:"model"`
	Endpoint        string `json:"endpoint"`
	Thinking        bool   `json:"thinking"`
	ReasoningEffort string `json:"reasoningEffort"`
	MaxTokens       int    `json:"maxTokens"`
	Verify          bool   `json:"verify"`
	RateLimit       int    `json:"rateLimit"`
}

type aiTestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type networkSettingsRequest struct {
	Enabled  bool   `json:"enabled"`
	Type     string `json:"type"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	IPStack  string `json:"ipStack"`
}

type networkSettingsResponse struct {
	Enabled  bool   `json:"enabled"`
	Type     string `json:"type"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	IPStack  string `json:"ipStack"`
}

type networkTestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/settings/ai", h.GetAISettings)
	g.PUT("/settings/ai", h.UpdateAISettings)
	g.POST("/settings/ai/test", h.TestAI)
	g.GET("/settings/network", h.GetNetworkSettings)
	g.PUT("/settings/network", h.UpdateNetworkSettings)
	g.POST("/settings/network/test", h.TestNetworkProxy)
}

func (h *SettingsHandler) GetAISettings(c echo.Context) error {
	settings, err := h.service.GetAISettings(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toAISettingsResponse(settings))
}

func (h *SettingsHandler) UpdateAISettings(c echo.Context) error {
	var req aiSettingsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	ctx := c.Request().Context()
	if err := h.service.SetAISettings(ctx, &service.AISettings{
		Provider:        req.Provider,
		APIKey:          req.APIKey,
		BaseURL:         req.BaseURL,
		Model:           req.Model,
		Endpoint:        req.Endpoint,
		Thinking:        req.Thinking,
		ReasoningEffort: req.ReasoningEffort,
		MaxTokens:       req.MaxTokens,
		Verify:          req.Verify,
		RateLimit:       req.RateLimit,
	}); err != nil {
		return writeServiceError(c, err)
	}
	settings, err := h.service.GetAISettings(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toAISettingsResponse(settings))
}

// TestAI sends one probe prompt with the submitted (unsaved) settings.
func (h *SettingsHandler) TestAI(c echo.Context) error {
	var req aiSettingsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	reply, err := h.service.TestAI(c.Request().Context(), req.Provider, req.APIKey, req.BaseURL, req.Model, req.Endpoint, req.Thinking, req.MaxTokens, req.ReasoningEffort)
	if err != nil {
		if errors.Is(err, service.ErrUpstream) {
			return c.JSON(http.StatusOK, aiTestResponse{Success: false, Error: err.Error()})
		}
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, aiTestResponse{Success: true, Message: reply})
}

func (h *SettingsHandler) GetNetworkSettings(c echo.Context) error {
	settings, err := h.service.GetNetworkSettings(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toNetworkSettingsResponse(settings))
}

func (h *SettingsHandler) UpdateNetworkSettings(c echo.Context) error {
	var req networkSettingsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	ctx := c.Request().Context()
	if err := h.service.SetNetworkSettings(ctx, toNetworkSettings(req)); err != nil {
		return writeServiceError(c, err)
	}
	settings, err := h.service.GetNetworkSettings(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toNetworkSettingsResponse(settings))
}

func (h *SettingsHandler) TestNetworkProxy(c echo.Context) error {
	var req networkSettingsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	if !req.Enabled {
		return c.JSON(http.StatusOK, networkTestResponse{Success: true, Message: "proxy disabled"})
	}
	if strings.TrimSpace(req.Host) == "" || req.Port <= 0 || req.Port > 65535 {
		return badRequest(c)
	}
	if err := h.service.TestProxy(c.Request().Context(), toNetworkSettings(req)); err != nil {
		if errors.Is(err, service.ErrUpstream) {
			return c.JSON(http.StatusOK, networkTestResponse{Success: false, Error: err.Error()})
		}
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, networkTestResponse{Success: true, Message: "proxy reachable"})
}

func toNetworkSettings(req networkSettingsRequest) *service.NetworkSettings {
	return &service.NetworkSettings{
		Enabled:  req.Enabled,
		Type:     req.Type,
		Host:     req.Host,
		Port:     req.Port,
		Username: req.Username,
		Password: req.Password,
		IPStack:  req.IPStack,
	}
}

func toAISettingsResponse(s *service.AISettings) aiSettingsResponse {
	return aiSettingsResponse{
		Provider:        s.Provider,
		APIKey:          s.APIKey,
		BaseURL:         s.BaseURL,
		Model:           s.Model,
		Endpoint:        s.Endpoint,
		Thinking:        s.Thinking,
		ReasoningEffort: s.ReasoningEffort,
		MaxTokens:       s.MaxTokens,
		Verify:          s.Verify,
		RateLimit:       s.RateLimit,
	}
}

func toNetworkSettingsResponse(s *service.NetworkSettings) networkSettingsResponse {
	return networkSettingsResponse{
		Enabled:  s.Enabled,
		Type:     s.Type,
		Host:     s.Host,
		Port:     s.Port,
		Username: s.Username,
		Password: s.Password,
		IPStack:  s.IPStack,
	}
}
