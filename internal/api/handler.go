// Package api exposes the analysis pipeline over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/zombar/seoanalyzer/internal/seo"
)

// Handler handles HTTP requests
type Handler struct {
	svc    *seo.Service
	mux    *http.ServeMux
	logger *slog.Logger
}

// NewHandler creates a new API handler with CORS support and metrics
func NewHandler(svc *seo.Service, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	h := &Handler{
		svc:    svc,
		mux:    http.NewServeMux(),
		logger: logger,
	}

	h.setupRoutes()

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Wrap with CORS
	return c.Handler(h.mux)
}

// setupRoutes configures all API routes
func (h *Handler) setupRoutes() {
	h.mux.Handle("/metrics", promhttp.Handler()) // Prometheus metrics endpoint
	h.mux.HandleFunc("/api/analyze", h.handleAnalyze)
	h.mux.HandleFunc("/api/insert-keyword", h.handleInsertKeyword)
	h.mux.HandleFunc("/api/analysis/", h.handleGetAnalysis)
	h.mux.HandleFunc("/health", h.handleHealth)
}

// handleHealth handles health check requests
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleAnalyze handles text analysis requests
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Text        string `json:"text"`
		ContentType string `json:"contentType"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	analysis, err := h.svc.Analyze(r.Context(), req.Text, req.ContentType)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, analysis, http.StatusOK)
}

// handleInsertKeyword handles keyword insertion requests
func (h *Handler) handleInsertKeyword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		AnalysisID int64  `json:"analysisId"`
		Keyword    string `json:"keyword"`
		Text       string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Keyword == "" || req.Text == "" {
		respondError(w, "Keyword and text are required", http.StatusBadRequest)
		return
	}

	optimizedText, analysis, err := h.svc.InsertKeyword(r.Context(), req.AnalysisID, req.Keyword, req.Text)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, map[string]interface{}{
		"optimizedText": optimizedText,
		"analysis":      analysis,
	}, http.StatusOK)
}

// handleGetAnalysis handles analysis retrieval requests
func (h *Handler) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/analysis/")
	if idx := strings.Index(idStr, "/"); idx != -1 {
		idStr = idStr[:idx]
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondError(w, "Invalid analysis ID", http.StatusBadRequest)
		return
	}

	analysis, err := h.svc.GetAnalysis(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, analysis, http.StatusOK)
}

// respondServiceError maps pipeline errors onto HTTP status codes:
// validation and missing-provider problems are the client's to fix (400),
// provider failures are an upstream fault (502), and unknown ids are 404.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *seo.ValidationError
	var providerErr *seo.ProviderError

	switch {
	case errors.As(err, &validationErr):
		respondError(w, validationErr.Message, http.StatusBadRequest)
	case errors.Is(err, seo.ErrProviderNotConfigured):
		respondError(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &providerErr):
		respondError(w, providerErr.Error(), http.StatusBadGateway)
	case errors.Is(err, seo.ErrNotFound):
		respondError(w, "Analysis not found", http.StatusNotFound)
	default:
		h.logger.Error("request failed", "path", r.URL.Path, "error", err)
		respondError(w, "Internal server error", http.StatusInternalServerError)
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
