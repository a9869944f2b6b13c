package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/zombar/seoanalyzer/internal/models"
	"github.com/zombar/seoanalyzer/internal/seo"
)

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	s := New()
	ctx := context.Background()

	var lastID int64
	for i := 0; i < 3; i++ {
		created, err := s.Create(ctx, &models.Analysis{OriginalText: "some text"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID <= lastID {
			t.Errorf("expected id > %d, got %d", lastID, created.ID)
		}
		lastID = created.ID
	}

	if lastID != 3 {
		t.Errorf("expected ids to start at 1 and increment, last id %d", lastID)
	}
}

func TestCreateSetsTimestamps(t *testing.T) {
	s := New()
	created, err := s.Create(context.Background(), &models.Analysis{OriginalText: "some text"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestGet(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.Create(ctx, &models.Analysis{OriginalText: "stored text", SEOScore: 75})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.OriginalText != "stored text" || got.SEOScore != 75 {
		t.Errorf("unexpected analysis: %+v", got)
	}
}

func TestGetNotFound(t *testing.T) {
	s := New()
	_, err := s.Get(context.Background(), 42)
	if !errors.Is(err, seo.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateOptimizedText(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.Create(ctx, &models.Analysis{
		OriginalText:  "original",
		OptimizedText: "original",
		SEOScore:      60,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := s.UpdateOptimizedText(ctx, created.ID, "original with keyword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.OptimizedText != "original with keyword" {
		t.Errorf("expected updated optimized text, got %q", updated.OptimizedText)
	}
	if updated.OriginalText != "original" {
		t.Error("original text must not change")
	}
	if updated.SEOScore != 60 {
		t.Error("score fields must not change")
	}

	got, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.OptimizedText != "original with keyword" {
		t.Error("update should be visible to subsequent reads")
	}
}

func TestUpdateOptimizedTextNotFound(t *testing.T) {
	s := New()
	_, err := s.UpdateOptimizedText(context.Background(), 7, "text")
	if !errors.Is(err, seo.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
