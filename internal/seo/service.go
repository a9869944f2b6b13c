// Package seo orchestrates the analysis pipeline: provider extraction,
// keyword normalization, metric calculation, recommendation generation, and
// keyword insertion, mediating with the record store.
package seo

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zombar/seoanalyzer/internal/analyzer"
	"github.com/zombar/seoanalyzer/internal/metrics"
	"github.com/zombar/seoanalyzer/internal/models"
	"github.com/zombar/seoanalyzer/pkg/tracing"
)

// Texts shorter than this are rejected before any provider call.
const minTextLength = 10

// Provider extracts keyword/entity/topic candidates from free text. A
// degraded provider may return an empty CandidateSet with a nil error when
// its response body cannot be parsed; hard failures return a *ProviderError.
type Provider interface {
	Name() string
	ExtractCandidates(ctx context.Context, text, contentType string) (*models.CandidateSet, error)
}

// Store persists analyses. Create assigns a positive, unique, monotonically
// increasing id; reads after a write of the same id observe that write.
type Store interface {
	Create(ctx context.Context, analysis *models.Analysis) (*models.Analysis, error)
	Get(ctx context.Context, id int64) (*models.Analysis, error)
	UpdateOptimizedText(ctx context.Context, id int64, optimizedText string) (*models.Analysis, error)
}

// Service composes the analysis pipeline over a store and a provider.
type Service struct {
	store    Store
	provider Provider
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// New creates a Service. provider may be nil, in which case Analyze fails
// with ErrProviderNotConfigured.
func New(store Store, provider Provider, m *metrics.Metrics, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:    store,
		provider: provider,
		metrics:  m,
		logger:   logger,
	}
}

// Analyze runs the full pipeline for one text: validate, extract candidates
// from the provider, normalize them into ranked keywords, compute metrics,
// generate recommendations, and persist the resulting Analysis with
// optimizedText starting equal to originalText.
func (s *Service) Analyze(ctx context.Context, text, contentType string) (*models.Analysis, error) {
	if len(text) < minTextLength {
		return nil, &ValidationError{Message: "Text must be at least 10 characters long"}
	}
	if contentType == "" {
		contentType = models.ContentTypeBlogPost
	}
	if !models.ValidContentType(contentType) {
		return nil, &ValidationError{Message: "Invalid content type: " + contentType}
	}
	if s.provider == nil {
		return nil, ErrProviderNotConfigured
	}

	tracing.SetSpanAttributes(ctx,
		attribute.Int("text.length", len(text)),
		attribute.String("content.type", contentType))

	start := time.Now()

	candidates, err := s.provider.ExtractCandidates(ctx, text, contentType)
	if err != nil {
		s.metrics.ProviderRequestsTotal.WithLabelValues(s.provider.Name(), "error").Inc()
		s.metrics.AnalysesTotal.WithLabelValues("provider_error").Inc()
		s.logger.Error("candidate extraction failed", "provider", s.provider.Name(), "error", err)
		return nil, err
	}
	s.metrics.ProviderRequestsTotal.WithLabelValues(s.provider.Name(), "success").Inc()

	keywords := analyzer.NormalizeCandidates(candidates)
	wordCount := analyzer.CountWords(text)
	seoScore := analyzer.CalculateSEOScore(text, keywords, wordCount)
	keywordDensity := analyzer.CalculateKeywordDensity(text, keywords, wordCount)
	readability := analyzer.ClassifyReadability(text, wordCount)
	recommendations := analyzer.GenerateRecommendations(seoScore, wordCount, keywords)

	analysis, err := s.store.Create(ctx, &models.Analysis{
		OriginalText:     text,
		ContentType:      contentType,
		SEOScore:         seoScore,
		ReadabilityScore: readability,
		KeywordDensity:   keywordDensity,
		WordCount:        wordCount,
		Recommendations:  recommendations,
		Keywords:         keywords,
		OptimizedText:    text,
	})
	if err != nil {
		s.metrics.AnalysesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	duration := time.Since(start).Seconds()
	s.metrics.AnalysesTotal.WithLabelValues("success").Inc()
	s.metrics.AnalysisDuration.WithLabelValues("success").Observe(duration)
	s.metrics.SEOScore.Observe(float64(seoScore))

	s.logger.Info("analysis completed",
		"analysis_id", analysis.ID,
		"word_count", wordCount,
		"seo_score", seoScore,
		"keyword_count", len(keywords),
		"readability", readability,
		"duration_seconds", duration,
	)

	return analysis, nil
}

// InsertKeyword splices keyword into text and persists the result as the
// analysis's optimizedText. Score fields are deliberately left untouched:
// fresh numbers require an explicit re-analysis, not an implicit recompute.
func (s *Service) InsertKeyword(ctx context.Context, analysisID int64, keyword, text string) (string, *models.Analysis, error) {
	if _, err := s.store.Get(ctx, analysisID); err != nil {
		return "", nil, err
	}

	optimizedText := analyzer.InsertKeyword(text, keyword)

	analysis, err := s.store.UpdateOptimizedText(ctx, analysisID, optimizedText)
	if err != nil {
		return "", nil, err
	}

	s.metrics.KeywordInsertionsTotal.Inc()
	s.logger.Info("keyword inserted",
		"analysis_id", analysisID,
		"keyword", keyword,
		"text_length", len(optimizedText),
	)

	return optimizedText, analysis, nil
}

// GetAnalysis loads a stored analysis by id.
func (s *Service) GetAnalysis(ctx context.Context, id int64) (*models.Analysis, error) {
	return s.store.Get(ctx, id)
}
