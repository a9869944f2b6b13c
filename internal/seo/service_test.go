package seo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zombar/seoanalyzer/internal/memstore"
	"github.com/zombar/seoanalyzer/internal/metrics"
	"github.com/zombar/seoanalyzer/internal/models"
	"github.com/zombar/seoanalyzer/internal/seo"
)

// fakeProvider returns a canned candidate set or error.
type fakeProvider struct {
	set *models.CandidateSet
	err error
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) ExtractCandidates(_ context.Context, _, _ string) (*models.CandidateSet, error) {
	return p.set, p.err
}

func newTestMetrics() *metrics.Metrics {
	// Each test gets a fresh registry so repeated metrics.New calls do not
	// collide on duplicate registration.
	prometheus.DefaultRegisterer = prometheus.NewRegistry()
	return metrics.New("test")
}

func newTestService(provider seo.Provider) (*seo.Service, *memstore.Store) {
	store := memstore.New()
	return seo.New(store, provider, newTestMetrics(), nil), store
}

func TestAnalyze(t *testing.T) {
	provider := &fakeProvider{
		set: &models.CandidateSet{
			Keywords: []models.Candidate{
				{Text: "Business Growth", RelevanceScore: 0.9},
			},
		},
	}
	svc, _ := newTestService(provider)

	analysis, err := svc.Analyze(context.Background(), "AI is powerful. It helps businesses grow fast. Many companies adopt it now.", "")
	require.NoError(t, err)

	assert.Equal(t, int64(1), analysis.ID)
	assert.Equal(t, models.ContentTypeBlogPost, analysis.ContentType, "empty content type defaults to blog_post")
	assert.Equal(t, 13, analysis.WordCount)
	assert.Equal(t, analysis.OriginalText, analysis.OptimizedText, "optimized text starts equal to original")
	require.Len(t, analysis.Keywords, 1)
	assert.Equal(t, "business growth", analysis.Keywords[0].Text)
	assert.NotEmpty(t, analysis.Recommendations)
	assert.NotEmpty(t, analysis.ReadabilityScore)
	assert.GreaterOrEqual(t, analysis.SEOScore, 0)
	assert.LessOrEqual(t, analysis.SEOScore, 100)
}

func TestAnalyzeValidation(t *testing.T) {
	svc, _ := newTestService(&fakeProvider{set: &models.CandidateSet{}})

	tests := []struct {
		name        string
		text        string
		contentType string
	}{
		{"short text", "too short", ""},
		{"invalid content type", "this text is long enough", "press_release"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Analyze(context.Background(), tt.text, tt.contentType)
			var validationErr *seo.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestAnalyzeNoProvider(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.Analyze(context.Background(), "this text is long enough to analyze", "")
	assert.ErrorIs(t, err, seo.ErrProviderNotConfigured)
}

func TestAnalyzeProviderError(t *testing.T) {
	providerErr := &seo.ProviderError{Provider: "Gemini", StatusCode: 500, Detail: "boom"}
	svc, _ := newTestService(&fakeProvider{err: providerErr})

	_, err := svc.Analyze(context.Background(), "this text is long enough to analyze", "")
	var got *seo.ProviderError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 500, got.StatusCode)
}

func TestAnalyzeDegradedProvider(t *testing.T) {
	// A provider that returns an empty set still produces an analysis with
	// no keywords.
	svc, _ := newTestService(&fakeProvider{set: &models.CandidateSet{}})

	analysis, err := svc.Analyze(context.Background(), "this text is long enough to analyze", "")
	require.NoError(t, err)
	assert.Empty(t, analysis.Keywords)
	assert.Equal(t, float64(0), analysis.KeywordDensity)
}

func TestInsertKeyword(t *testing.T) {
	svc, _ := newTestService(&fakeProvider{set: &models.CandidateSet{}})

	analysis, err := svc.Analyze(context.Background(), "AI is powerful. It helps businesses grow fast. Many companies adopt it now.", "")
	require.NoError(t, err)

	optimized, updated, err := svc.InsertKeyword(context.Background(), analysis.ID, "machine learning", analysis.OriginalText)
	require.NoError(t, err)

	assert.Equal(t, "AI is powerful. It machine learning helps businesses grow fast. Many companies adopt it now.", optimized)
	assert.Equal(t, optimized, updated.OptimizedText)
	assert.Equal(t, analysis.OriginalText, updated.OriginalText, "original text must not change")
	assert.Equal(t, analysis.SEOScore, updated.SEOScore, "scores are not recomputed on insertion")
}

func TestInsertKeywordNotFound(t *testing.T) {
	svc, _ := newTestService(&fakeProvider{set: &models.CandidateSet{}})

	_, _, err := svc.InsertKeyword(context.Background(), 99, "keyword", "some text that is long enough")
	assert.ErrorIs(t, err, seo.ErrNotFound)
}

func TestGetAnalysis(t *testing.T) {
	svc, _ := newTestService(&fakeProvider{set: &models.CandidateSet{}})

	created, err := svc.Analyze(context.Background(), "this text is long enough to analyze", "")
	require.NoError(t, err)

	got, err := svc.GetAnalysis(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.OriginalText, got.OriginalText)

	_, err = svc.GetAnalysis(context.Background(), created.ID+1)
	assert.ErrorIs(t, err, seo.ErrNotFound)
}

func TestAnalyzeStoreError(t *testing.T) {
	svc := seo.New(failingStore{}, &fakeProvider{set: &models.CandidateSet{}}, newTestMetrics(), nil)

	_, err := svc.Analyze(context.Background(), "this text is long enough to analyze", "")
	require.Error(t, err)
	assert.False(t, errors.Is(err, seo.ErrNotFound))
}

type failingStore struct{}

func (failingStore) Create(context.Context, *models.Analysis) (*models.Analysis, error) {
	return nil, errors.New("disk full")
}

func (failingStore) Get(context.Context, int64) (*models.Analysis, error) {
	return nil, errors.New("disk full")
}

func (failingStore) UpdateOptimizedText(context.Context, int64, string) (*models.Analysis, error) {
	return nil, errors.New("disk full")
}
