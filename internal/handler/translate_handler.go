package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"safelink/backend/internal/glossary"
	"safelink/backend/internal/model"
	"safelink/backend/internal/service"
)

type TranslateHandler struct {
	service  service.TranslationService
	settings service.SettingsService
	now      func() time.Time
}

type translateRequest struct {
	Text      string `json:"text"`
	Lang      string `json:"lang"`
	IsManager bool   `json:"isManager"`
	Verify    *bool  `json:"verify"`
}

type translateResponse struct {
	Translation   string   `json:"translation"`
	StandardText  string   `json:"standardText,omitempty"`
	DetectedTerms []string `json:"detectedTerms"`
	Verification  *string  `json:"verification,omitempty"`
	Approximate   bool     `json:"approximate"`
	Source        string   `json:"source"`
	Lang          string   `json:"lang"`
}

type batchTranslateRequest struct {
	Text  string   `json:"text"`
	Langs []string `json:"langs"`
}

type batchTranslateResponse struct {
	StandardText  string            `json:"standardText"`
	DetectedTerms []string          `json:"detectedTerms"`
	Translations  map[string]string `json:"translations"`
	Approximate   map[string]bool   `json:"approximate"`
}

type chatTurnResponse struct {
	Role         string   `json:"role"`
	Original     string   `json:"original"`
	Standardized string   `json:"standardized,omitempty"`
	Detected     []string `json:"detected"`
	Translated   string   `json:"translated"`
	Lang         string   `json:"lang"`
	Approximate  bool     `json:"approximate"`
	Timestamp    string   `json:"timestamp"`
}

type clearCacheResponse struct {
	Deleted int64 `json:"deleted"`
}

type languageResponse struct {
	Code  string `json:"code"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

// NewTranslateHandler builds the translation endpoints. settings may be nil;
// it only supplies the default for the verify flag.
func NewTranslateHandler(service service.TranslationService, settings service.SettingsService) *TranslateHandler {
	return &TranslateHandler{service: service, settings: settings, now: time.Now}
}

func (h *TranslateHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/languages", h.Languages)
	g.POST("/translate", h.Translate)
	g.POST("/translate/batch", h.TranslateBatch)
	g.POST("/conversation/turn", h.Turn)
}

func (h *TranslateHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.DELETE("/translate/cache", h.ClearCache)
}

func (h *TranslateHandler) Languages(c echo.Context) error {
	out := make([]languageResponse, 0, len(glossary.Languages))
	for _, l := range glossary.Languages {
		out = append(out, languageResponse{Code: l.Code, Key: l.Key, Name: l.Name, Label: l.Label})
	}
	return c.JSON(http.StatusOK, out)
}

// Translate godoc
// @Summary      Translate one utterance
// @Description  Manager text is standardized and translated into lang. Worker text is translated into Korean. When no remote provider answers, the response is marked approximate.
// @Tags         translate
// @Accept       json
// @Produce      json
// @Param        body  body      translateRequest  true  "utterance"
// @Success      200   {object}  translateResponse
// @Failure      400   {object}  errorResponse
// @Router       /translate [post]
func (h *TranslateHandler) Translate(c echo.Context) error {
	req, ok := h.bindTranslate(c)
	if !ok {
		return badRequest(c)
	}
	res, err := h.service.Translate(c.Request().Context(), req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTranslateResponse(res))
}

// Turn translates like Translate and returns the rendered chat turn.
func (h *TranslateHandler) Turn(c echo.Context) error {
	req, ok := h.bindTranslate(c)
	if !ok {
		return badRequest(c)
	}
	res, err := h.service.Translate(c.Request().Context(), req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toChatTurnResponse(service.ChatTurn(req, res, h.now())))
}

func (h *TranslateHandler) bindTranslate(c echo.Context) (service.TranslationRequest, bool) {
	var body translateRequest
	if err := c.Bind(&body); err != nil {
		return service.TranslationRequest{}, false
	}
	req := service.TranslationRequest{Text: body.Text, Lang: body.Lang, ManagerSpeaking: body.IsManager}
	switch {
	case body.Verify != nil:
		req.Verify = *body.Verify
	case h.settings != nil && body.IsManager:
		req.Verify = h.settings.VerifyEnabled(c.Request().Context())
	}
	return req, true
}

func (h *TranslateHandler) TranslateBatch(c echo.Context) error {
	var req batchTranslateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	out, err := h.service.TranslateBatch(c.Request().Context(), req.Text, req.Langs)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, batchTranslateResponse{
		StandardText:  out.StandardText,
		DetectedTerms: out.DetectedTerms,
		Translations:  out.Translations,
		Approximate:   out.Approximate,
	})
}

func (h *TranslateHandler) ClearCache(c echo.Context) error {
	n, err := h.service.ClearCache(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, clearCacheResponse{Deleted: n})
}

func toTranslateResponse(r *service.TranslationResult) translateResponse {
	detected := r.DetectedTerms
	if detected == nil {
		detected = []string{}
	}
	return translateResponse{
		Translation:   r.Translation,
		StandardText:  r.StandardText,
		DetectedTerms: detected,
		Verification:  r.Verification,
		Approximate:   r.Approximate,
		Source:        r.Source,
		Lang:          r.Lang,
	}
}

func toChatTurnResponse(t model.ChatTurn) chatTurnResponse {
	return chatTurnResponse{
		Role:         t.Role,
		Original:     t.Original,
		Standardized: t.Standardized,
		Detected:     t.Detected,
		Translated:   t.Translated,
		Lang:         t.Lang,
		Approximate:  t.Approximate,
		Timestamp:    t.Timestamp.Format(time.RFC3339),
	}
}
