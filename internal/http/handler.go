package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/seoscope/seoscope/internal/domain"
	"github.com/seoscope/seoscope/internal/observability"
)

// Handler handles HTTP requests. It is a thin translation shim: all
// analysis semantics live in the analyzer service.
type Handler struct {
	analyzer *domain.AnalyzerService
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(analyzer *domain.AnalyzerService) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

// apiResponse is the uniform response envelope.
type apiResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type analyzeRequest struct {
	Content string `json:"content"`
}

type batchRequest struct {
	Items       []domain.BatchItem `json:"items"`
	Concurrency int                `json:"concurrency,omitempty"`
	Fast        bool               `json:"fast,omitempty"`
}

type batchItemResponse struct {
	ID     string                 `json:"id"`
	Result *domain.AnalysisResult `json:"result,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

type suggestionsRequest struct {
	Content string                `json:"content"`
	Type    domain.SuggestionType `json:"type"`
}

type suggestionsResponse struct {
	Analysis    *domain.AnalysisResult  `json:"analysis"`
	Suggestions []domain.Recommendation `json:"suggestions"`
}

// HandleAnalyze processes single-document analysis requests.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("analysis request received",
		zap.Int("content_length", len(req.Content)),
	)

	result, err := h.analyzer.Analyze(ctx, req.Content)
	if err != nil {
		status := http.StatusInternalServerError
		if isValidationError(err) {
			status = http.StatusBadRequest
		} else {
			logger.Error("analysis failed", zap.Error(err))
		}
		writeError(w, status, err.Error())
		return
	}

	logger.Info("analysis succeeded",
		zap.Int("score", result.Score.Overall),
		zap.Int("recommendations", len(result.Recommendations)),
	)

	writeSuccess(w, result)
}

// HandleAnalyzeBatch processes bounded-concurrency batch analysis requests.
func (h *Handler) HandleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "items are required")
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("batch analysis request received",
		zap.Int("items", len(req.Items)),
		zap.Int("concurrency", req.Concurrency),
		zap.Bool("fast", req.Fast),
	)

	results := h.analyzer.AnalyzeBatch(ctx, req.Items, domain.BatchOptions{
		Concurrency: req.Concurrency,
		Fast:        req.Fast,
	})

	// Item failures ride in the payload; the batch itself always
	// succeeds with one entry per input item.
	payload := make([]batchItemResponse, len(results))
	for i, res := range results {
		payload[i] = batchItemResponse{ID: res.ID, Result: res.Result}
		if res.Err != nil {
			payload[i].Error = res.Err.Error()
		}
	}

	writeSuccess(w, payload)
}

// HandleSuggestions analyzes content and augments the result with
// AI-generated suggestions.
func (h *Handler) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req suggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}
	if req.Type == "" {
		req.Type = domain.SuggestionContent
	}

	analysis, err := h.analyzer.Analyze(ctx, req.Content)
	if err != nil {
		status := http.StatusInternalServerError
		if isValidationError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}

	suggestions := h.analyzer.GenerateSuggestions(ctx, analysis, req.Type)

	writeSuccess(w, suggestionsResponse{
		Analysis:    analysis,
		Suggestions: suggestions,
	})
}

// HandleCacheStats exposes the cache counters.
func (h *Handler) HandleCacheStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stats := h.analyzer.CacheStats()
	if stats == nil {
		writeError(w, http.StatusNotFound, "cache stats not available")
		return
	}

	writeSuccess(w, stats)
}

// HandleCacheClear drops all cached results.
func (h *Handler) HandleCacheClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	h.analyzer.ClearCache(r.Context())
	writeSuccess(w, map[string]string{"status": "cleared"})
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	}); err != nil {
		// Already written status, can't change it, just log.
		return
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrEmptyContent) || errors.Is(err, domain.ErrContentTooLarge)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(apiResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiResponse{
		Success:   false,
		Error:     message,
		Timestamp: time.Now().UTC(),
	})
}
