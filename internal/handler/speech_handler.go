package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"safelink/backend/internal/service"
)

type SpeechHandler struct {
	service service.SpeechService
}

type speechRequest struct {
	Text     string `json:"text"`
	LangCode string `json:"langCode"`
	Gender   string `json:"gender"`
}

type speechResponse struct {
	AudioContent string `json:"audioContent,omitempty"`
	MimeType     string `json:"mimeType,omitempty"`
	SampleRate   int    `json:"sampleRate,omitempty"`
	Source       string `json:"source"`
	Fallback     bool   `json:"fallback,omitempty"`
}

func NewSpeechHandler(service service.SpeechService) *SpeechHandler {
	return &SpeechHandler{service: service}
}

func (h *SpeechHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/tts", h.Synthesize)
}

// Synthesize godoc
// @Summary      Text to speech
// @Description  Returns base64 audio, or fallback=true when the browser should speak the text itself.
// @Tags         speech
// @Accept       json
// @Produce      json
// @Param        body  body      speechRequest  true  "text and voice"
// @Success      200   {object}  speechResponse
// @Failure      400   {object}  errorResponse
// @Router       /tts [post]
func (h *SpeechHandler) Synthesize(c echo.Context) error {
	var req speechRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	res, err := h.service.Synthesize(c.Request().Context(), req.Text, req.LangCode, req.Gender)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, speechResponse{
		AudioContent: res.AudioContent,
		MimeType:     res.MimeType,
		SampleRate:   res.SampleRate,
		Source:       res.Source,
		Fallback:     res.Fallback,
	})
}
