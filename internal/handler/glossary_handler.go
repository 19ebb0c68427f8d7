package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"safelink/backend/internal/glossary"
	"safelink/backend/internal/service"
)

type GlossaryHandler struct {
	service service.GlossaryService
}

type glossaryTermRequest struct {
	Slang        string            `json:"slang"`
	Standard     string            `json:"standard"`
	Translations map[string]string `json:"translations"`
}

type glossaryTermResponse struct {
	Slang        string            `json:"slang"`
	Standard     string            `json:"standard"`
	Translations map[string]string `json:"translations"`
	Builtin      bool              `json:"builtin"`
}

type glossaryListResponse struct {
	Terms       []glossaryTermResponse `json:"terms"`
	Suggestions []string               `json:"suggestions,omitempty"`
}

type glossaryConflictResponse struct {
	Error    string               `json:"error"`
	Existing glossaryTermResponse `json:"existing"`
}

type standardizeRequest struct {
	Text string `json:"text"`
}

type standardizeResponse struct {
	StandardText  string   `json:"standardText"`
	DetectedTerms []string `json:"detectedTerms"`
}

func NewGlossaryHandler(service service.GlossaryService) *GlossaryHandler {
	return &GlossaryHandler{service: service}
}

// RegisterRoutes registers the routes open to workers.
func (h *GlossaryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/glossary", h.List)
	g.POST("/glossary/standardize", h.Standardize)
}

func (h *GlossaryHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/glossary", h.Create)
	g.DELETE("/glossary/:slang", h.Delete)
}

// List godoc
// @Summary      List or search glossary terms
// @Tags         glossary
// @Produce      json
// @Param        q    query     string  false  "slang or standard form, case-insensitive"
// @Success      200  {object}  glossaryListResponse
// @Router       /glossary [get]
func (h *GlossaryHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	query := strings.TrimSpace(c.QueryParam("q"))

	terms, err := h.service.List(ctx, query)
	if err != nil {
		return writeServiceError(c, err)
	}
	resp := glossaryListResponse{Terms: make([]glossaryTermResponse, 0, len(terms))}
	for _, t := range terms {
		resp.Terms = append(resp.Terms, toGlossaryTermResponse(t))
	}
	if query != "" && len(terms) == 0 {
		suggestions, err := h.service.Suggest(ctx, query)
		if err != nil {
			return writeServiceError(c, err)
		}
		resp.Suggestions = suggestions
	}
	return c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary      Add a custom glossary term
// @Tags         glossary
// @Accept       json
// @Produce      json
// @Param        body  body      glossaryTermRequest  true  "term"
// @Success      201   {object}  glossaryTermResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  glossaryConflictResponse
// @Router       /glossary [post]
func (h *GlossaryHandler) Create(c echo.Context) error {
	var req glossaryTermRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	term, err := h.service.Add(c.Request().Context(), glossary.Entry{
		Slang:        req.Slang,
		Standard:     req.Standard,
		Translations: req.Translations,
	})
	if err != nil {
		var conflict *service.TermConflictError
		if errors.As(err, &conflict) {
			return c.JSON(http.StatusConflict, glossaryConflictResponse{
				Error:    "term already exists",
				Existing: toGlossaryTermResponse(service.GlossaryTerm{Entry: conflict.Existing, Builtin: conflict.Builtin}),
			})
		}
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toGlossaryTermResponse(*term))
}

// Delete removes a term by exact slang. Missing terms are not an error.
func (h *GlossaryHandler) Delete(c echo.Context) error {
	slang := c.Param("slang")
	// echo routes on the raw path when one is set, leaving params escaped
	if c.Request().URL.RawPath != "" {
		unescaped, err := url.PathUnescape(slang)
		if err != nil {
			return badRequest(c)
		}
		slang = unescaped
	}
	if strings.TrimSpace(slang) == "" {
		return badRequest(c)
	}
	if err := h.service.Remove(c.Request().Context(), slang); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *GlossaryHandler) Standardize(c echo.Context) error {
	var req standardizeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	res, err := h.service.Standardize(c.Request().Context(), req.Text)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, standardizeResponse{StandardText: res.StandardText, DetectedTerms: res.DetectedTerms})
}

func toGlossaryTermResponse(t service.GlossaryTerm) glossaryTermResponse {
	return glossaryTermResponse{
		Slang:        t.Slang,
		Standard:     t.Standard,
		Translations: t.Translations,
		Builtin:      t.Builtin,
	}
}
