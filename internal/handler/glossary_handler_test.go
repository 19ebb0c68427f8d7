package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"safelink/backend/internal/glossary"
	"safelink/backend/internal/handler"
	"safelink/backend/internal/service"
	"safelink/backend/internal/service/mock"
)

func TestGlossaryHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockGlossaryService(ctrl)
	h := handler.NewGlossaryHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/glossary?q=%EC%95%84%EC%8B%9C%EB%B0%94", nil))

	mockService.EXPECT().List(gomock.Any(), "아시바").Return([]service.GlossaryTerm{
		{Entry: glossary.Entry{Slang: "아시바", Standard: "비계 (Scaffolding)", Translations: map[string]string{"vi": "Giàn giáo"}}, Builtin: true},
	}, nil)

	require.NoError(t, h.List(c))

	var resp handler.GlossaryListResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp.Terms, 1)
	require.True(t, resp.Terms[0].Builtin)
	require.Equal(t, "Giàn giáo", resp.Terms[0].Translations["vi"])
	require.Empty(t, resp.Suggestions)
}

func TestGlossaryHandler_List_NoHitsSuggests(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockGlossaryService(ctrl)
	h := handler.NewGlossaryHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/glossary?q=%EC%95%84%EC%8B%9C%EB%B0%94%EC%95%84", nil))

	mockService.EXPECT().List(gomock.Any(), "아시바아").Return(nil, nil)
	mockService.EXPECT().Suggest(gomock.Any(), "아시바아").Return([]string{"아시바"}, nil)

	require.NoError(t, h.List(c))

	var resp handler.GlossaryListResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.NotNil(t, resp.Terms)
	require.Empty(t, resp.Terms)
	require.Equal(t, []string{"아시바"}, resp.Suggestions)
}

func TestGlossaryHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockGlossaryService(ctrl)
	h := handler.NewGlossaryHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/glossary", map[string]interface{}{
		"slang": "뺑끼", "standard": "페인트 (Paint)", "translations": map[string]string{"vi": "Sơn"},
	}))

	mockService.EXPECT().
		Add(gomock.Any(), glossary.Entry{Slang: "뺑끼", Standard: "페인트 (Paint)", Translations: map[string]string{"vi": "Sơn"}}).
		Return(&service.GlossaryTerm{Entry: glossary.Entry{Slang: "뺑끼", Standard: "페인트 (Paint)"}}, nil)

	require.NoError(t, h.Create(c))

	var resp handler.GlossaryTermResponse
	assertJSONResponse(t, rec, http.StatusCreated, &resp)
	require.Equal(t, "뺑끼", resp.Slang)
	require.False(t, resp.Builtin)
}

func TestGlossaryHandler_Create_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockGlossaryService(ctrl)
	h := handler.NewGlossaryHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/glossary", map[string]string{
		"slang": "공구리", "standard": "콘크리트",
	}))

	mockService.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil, &service.TermConflictError{
		Existing: glossary.Entry{Slang: "공구리", Standard: "콘크리트 (Concrete)"},
		Builtin:  true,
	})

	require.NoError(t, h.Create(c))

	var resp handler.GlossaryConflictResponse
	assertJSONResponse(t, rec, http.StatusConflict, &resp)
	require.Equal(t, "공구리", resp.Existing.Slang)
	require.True(t, resp.Existing.Builtin)
}

func TestGlossaryHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockGlossaryService(ctrl)
	h := handler.NewGlossaryHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodDelete, "/glossary/x", nil))
	setPathParams(c, map[string]string{"slang": "뺑끼"})

	mockService.EXPECT().Remove(gomock.Any(), "뺑끼").Return(nil)

	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGlossaryHandler_DeletePercentSlang(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockGlossaryService(ctrl)
	h := handler.NewGlossaryHandler(mockService)

	e := newTestEcho()
	e.DELETE("/glossary/:slang", h.Delete)

	mockService.EXPECT().Remove(gomock.Any(), "50%").Return(nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, newJSONRequest(http.MethodDelete, "/glossary/50%25", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGlossaryHandler_DeleteRawPathSlang(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockGlossaryService(ctrl)
	h := handler.NewGlossaryHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodDelete, "/glossary/A%2FB", nil))
	setPathParams(c, map[string]string{"slang": "A%2FB"})

	mockService.EXPECT().Remove(gomock.Any(), "A/B").Return(nil)

	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGlossaryHandler_Standardize(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockGlossaryService(ctrl)
	h := handler.NewGlossaryHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/glossary/standardize", map[string]string{"text": "아시바 점검"}))

	mockService.EXPECT().Standardize(gomock.Any(), "아시바 점검").
		Return(glossary.Result{StandardText: "비계 점검", DetectedTerms: []string{"아시바"}}, nil)

	require.NoError(t, h.Standardize(c))

	var resp handler.StandardizeResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "비계 점검", resp.StandardText)
	require.Equal(t, []string{"아시바"}, resp.DetectedTerms)
}
