package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/zombar/seoanalyzer/internal/models"
	"github.com/zombar/seoanalyzer/internal/seo"
)

// Create inserts an analysis and returns it with the assigned id and
// timestamps filled in.
func (db *DB) Create(ctx context.Context, analysis *models.Analysis) (*models.Analysis, error) {
	keywordsJSON, err := json.Marshal(analysis.Keywords)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keywords: %w", err)
	}
	recommendationsJSON, err := json.Marshal(analysis.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	now := time.Now().UTC()
	result, err := db.conn.ExecContext(ctx, `
		INSERT INTO analyses (
			original_text, content_type, seo_score, readability_score,
			keyword_density, word_count, recommendations, keywords,
			optimized_text, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		analysis.OriginalText, analysis.ContentType, analysis.SEOScore,
		analysis.ReadabilityScore, analysis.KeywordDensity, analysis.WordCount,
		string(recommendationsJSON), string(keywordsJSON),
		analysis.OptimizedText, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert analysis: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get insert id: %w", err)
	}

	stored := *analysis
	stored.ID = id
	stored.CreatedAt = now
	stored.UpdatedAt = now
	return &stored, nil
}

// Get loads an analysis by id, or seo.ErrNotFound.
func (db *DB) Get(ctx context.Context, id int64) (*models.Analysis, error) {
	row := db.conn.QueryRowContext(ctx, `
		SELECT id, original_text, content_type, seo_score, readability_score,
			keyword_density, word_count, recommendations, keywords,
			optimized_text, created_at, updated_at
		FROM analyses WHERE id = ?`, id)

	return scanAnalysis(row)
}

// UpdateOptimizedText replaces the analysis's optimized text and returns the
// updated record, or seo.ErrNotFound.
func (db *DB) UpdateOptimizedText(ctx context.Context, id int64, optimizedText string) (*models.Analysis, error) {
	result, err := db.conn.ExecContext(ctx,
		"UPDATE analyses SET optimized_text = ?, updated_at = ? WHERE id = ?",
		optimizedText, time.Now().UTC(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update analysis: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return nil, seo.ErrNotFound
	}

	return db.Get(ctx, id)
}

func scanAnalysis(row *sql.Row) (*models.Analysis, error) {
	var analysis models.Analysis
	var recommendationsJSON, keywordsJSON string

	err := row.Scan(
		&analysis.ID, &analysis.OriginalText, &analysis.ContentType,
		&analysis.SEOScore, &analysis.ReadabilityScore, &analysis.KeywordDensity,
		&analysis.WordCount, &recommendationsJSON, &keywordsJSON,
		&analysis.OptimizedText, &analysis.CreatedAt, &analysis.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, seo.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan analysis: %w", err)
	}

	if err := json.Unmarshal([]byte(recommendationsJSON), &analysis.Recommendations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recommendations: %w", err)
	}
	if err := json.Unmarshal([]byte(keywordsJSON), &analysis.Keywords); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keywords: %w", err)
	}

	return &analysis, nil
}
