package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"safelink/backend/internal/model"
	"safelink/backend/internal/service"
)

// TBMHandler serves toolbox meetings: the manager opens a session and each
// worker signs once.
type TBMHandler struct {
	service service.TBMService
}

type tbmStartRequest struct {
	Instruction string `json:"instruction"`
}

type tbmSignRequest struct {
	WorkerName     string `json:"workerName"`
	WorkerLanguage string `json:"workerLanguage"`
}

type tbmSessionResponse struct {
	ID            string   `json:"id"`
	Instruction   string   `json:"instruction"`
	StandardText  string   `json:"standardText"`
	DetectedTerms []string `json:"detectedTerms"`
	Status        string   `json:"status"`
	CreatedAt     string   `json:"createdAt"`
	ClosedAt      *string  `json:"closedAt,omitempty"`
}

type tbmStartResponse struct {
	Session      tbmSessionResponse `json:"session"`
	Translations map[string]string  `json:"translations"`
	Approximate  map[string]bool    `json:"approximate"`
}

type tbmSignatureResponse struct {
	ID             string `json:"id"`
	SessionID      string `json:"sessionId"`
	WorkerName     string `json:"workerName"`
	WorkerLanguage string `json:"workerLanguage"`
	Receipt        string `json:"receipt"`
	SignedAt       string `json:"signedAt"`
}

type tbmStatusResponse struct {
	Active      *tbmSessionResponse    `json:"active"`
	SignedCount int                    `json:"signedCount"`
	Signatures  []tbmSignatureResponse `json:"signatures"`
}

func NewTBMHandler(service service.TBMService) *TBMHandler {
	return &TBMHandler{service: service}
}

func (h *TBMHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/tbm/status", h.Status)
	g.POST("/tbm/:id/sign", h.Sign)
}

func (h *TBMHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/tbm", h.Start)
	g.POST("/tbm/:id/close", h.Close)
}

// Start godoc
// @Summary      Open a toolbox meeting
// @Description  Closes any active session, translates the instruction for every language and pushes it to workers.
// @Tags         tbm
// @Accept       json
// @Produce      json
// @Param        body  body      tbmStartRequest  true  "instruction"
// @Success      201   {object}  tbmStartResponse
// @Failure      400   {object}  errorResponse
// @Router       /tbm [post]
func (h *TBMHandler) Start(c echo.Context) error {
	var req tbmStartRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	out, err := h.service.Start(c.Request().Context(), req.Instruction)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, tbmStartResponse{
		Session:      toTBMSessionResponse(*out.Session),
		Translations: out.Translations,
		Approximate:  out.Approximate,
	})
}

func (h *TBMHandler) Status(c echo.Context) error {
	st, err := h.service.Status(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	resp := tbmStatusResponse{
		SignedCount: st.SignedCount,
		Signatures:  make([]tbmSignatureResponse, 0, len(st.Signatures)),
	}
	if st.Active != nil {
		s := toTBMSessionResponse(*st.Active)
		resp.Active = &s
	}
	for _, sig := range st.Signatures {
		resp.Signatures = append(resp.Signatures, toTBMSignatureResponse(sig))
	}
	return c.JSON(http.StatusOK, resp)
}

// Sign godoc
// @Summary      Sign the active toolbox meeting
// @Tags         tbm
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "session id"
// @Param        body  body      tbmSignRequest  true  "worker"
// @Success      201   {object}  tbmSignatureResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /tbm/{id}/sign [post]
func (h *TBMHandler) Sign(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c)
	}
	var req tbmSignRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	sig, err := h.service.Sign(c.Request().Context(), id, req.WorkerName, req.WorkerLanguage)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toTBMSignatureResponse(*sig))
}

func (h *TBMHandler) Close(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c)
	}
	if err := h.service.Close(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toTBMSessionResponse(s model.TBMSession) tbmSessionResponse {
	detected := s.DetectedTerms
	if detected == nil {
		detected = []string{}
	}
	return tbmSessionResponse{
		ID:            itoa(s.ID),
		Instruction:   s.Instruction,
		StandardText:  s.StandardText,
		DetectedTerms: detected,
		Status:        s.Status,
		CreatedAt:     formatTime(s.CreatedAt),
		ClosedAt:      formatTimePtr(s.ClosedAt),
	}
}

func toTBMSignatureResponse(s model.TBMSignature) tbmSignatureResponse {
	return tbmSignatureResponse{
		ID:             itoa(s.ID),
		SessionID:      itoa(s.SessionID),
		WorkerName:     s.WorkerName,
		WorkerLanguage: s.WorkerLanguage,
		Receipt:        s.Receipt,
		SignedAt:       formatTime(s.SignedAt),
	}
}
