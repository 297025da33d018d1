package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seoscope/seoscope/internal/cache/memory"
	"github.com/seoscope/seoscope/internal/domain"
	"github.com/seoscope/seoscope/internal/extract"
)

func newTestHandler(t *testing.T, cache domain.ResultCache) *Handler {
	t.Helper()
	analyzer := domain.NewAnalyzerService(
		extract.New(),
		domain.NewScoringEngine(),
		cache,
		nil,
		domain.DefaultAnalyzerConfig(),
	)
	return NewHandler(analyzer)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandleAnalyze_Success(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := postJSON(t, h.HandleAnalyze, "/v1/analyze", map[string]string{
		"content": "<html><head><title>Test Page</title></head><body><p>body words here</p></body></html>",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.True(t, resp.Success)
	require.Empty(t, resp.Error)
	require.NotNil(t, resp.Data)

	data := resp.Data.(map[string]interface{})
	require.Contains(t, data, "score")
	require.Contains(t, data, "metrics")
}

func TestHandleAnalyze_MissingContent(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := postJSON(t, h.HandleAnalyze, "/v1/analyze", map[string]string{})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.False(t, resp.Success)
	require.Contains(t, resp.Error, "content is required")
}

func TestHandleAnalyze_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.HandleAnalyze(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, decodeEnvelope(t, rec).Success)
}

func TestHandleAnalyze_OversizedContent(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := postJSON(t, h.HandleAnalyze, "/v1/analyze", map[string]string{
		"content": strings.Repeat("x", 100_001),
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.False(t, resp.Success)
	require.Contains(t, resp.Error, "exceeds maximum length")
}

func TestHandleAnalyze_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/analyze", nil)
	rec := httptest.NewRecorder()
	h.HandleAnalyze(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleAnalyzeBatch_MixedResults(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := postJSON(t, h.HandleAnalyzeBatch, "/v1/analyze/batch", map[string]interface{}{
		"items": []map[string]string{
			{"id": "good", "content": "a document with plenty of words to analyze"},
			{"id": "bad", "content": ""},
		},
	})

	// Per-item failures never fail the batch.
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.True(t, resp.Success)

	items := resp.Data.([]interface{})
	require.Len(t, items, 2)

	first := items[0].(map[string]interface{})
	require.Equal(t, "good", first["id"])
	require.NotContains(t, first, "error")

	second := items[1].(map[string]interface{})
	require.Equal(t, "bad", second["id"])
	require.Contains(t, second["error"].(string), "cannot be empty")
	require.NotContains(t, second, "result")
}

func TestHandleAnalyzeBatch_EmptyItems(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := postJSON(t, h.HandleAnalyzeBatch, "/v1/analyze/batch", map[string]interface{}{
		"items": []map[string]string{},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSuggestions_NoProviderConfigured(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := postJSON(t, h.HandleSuggestions, "/v1/suggestions", map[string]string{
		"content": "some content worth improving",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	require.Contains(t, data, "analysis")
	suggestions := data["suggestions"].([]interface{})
	require.Empty(t, suggestions)
}

func TestHandleCacheStats_Available(t *testing.T) {
	store := memory.New(memory.Config{MaxSize: 10, TrackStats: true})
	t.Cleanup(func() { _ = store.Close() })
	h := newTestHandler(t, store)

	req := httptest.NewRequest(http.MethodGet, "/v1/cache/stats", nil)
	rec := httptest.NewRecorder()
	h.HandleCacheStats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	require.Contains(t, data, "hits")
	require.Contains(t, data, "misses")
}

func TestHandleCacheStats_NotAvailable(t *testing.T) {
	h := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/cache/stats", nil)
	rec := httptest.NewRecorder()
	h.HandleCacheStats(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.False(t, decodeEnvelope(t, rec).Success)
}

func TestHandleCacheClear(t *testing.T) {
	store := memory.New(memory.Config{MaxSize: 10, TrackStats: true})
	t.Cleanup(func() { _ = store.Close() })
	h := newTestHandler(t, store)

	rec := postJSON(t, h.HandleAnalyze, "/v1/analyze", map[string]string{
		"content": "content to warm the cache with",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodDelete, "/v1/cache", nil)
	clearRec := httptest.NewRecorder()
	h.HandleCacheClear(clearRec, req)

	require.Equal(t, http.StatusOK, clearRec.Code)
	require.Equal(t, int64(0), store.Stats().Size)
}

func TestHandleCacheClear_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/cache", nil)
	rec := httptest.NewRecorder()
	h.HandleCacheClear(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	h := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.HandleHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "healthy", body["status"])
}
