package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-insight/internal/types"
)

// AnalysisRecord is a stored resume analysis.
type AnalysisRecord struct {
	ID        uuid.UUID            `json:"id"`
	FileName  string               `json:"file_name"`
	Email     string               `json:"email"`
	Result    types.AnalysisResult `json:"result"`
	CreatedAt time.Time            `json:"created_at"`
}

// SaveAnalysis stores an analysis result and returns its ID
func (db *DB) SaveAnalysis(ctx context.Context, fileName, email string, result *types.AnalysisResult) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (file_name, email, score, result)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		fileName, email, result.QualityScore, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a stored analysis by ID. Returns nil when no
// record exists.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	var resultBytes []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, file_name, email, result, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.FileName, &rec.Email, &resultBytes, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	if err := json.Unmarshal(resultBytes, &rec.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis %s: %w", id, err)
	}
	return &rec, nil
}

// ListAnalyses retrieves recent analyses, newest first
func (db *DB) ListAnalyses(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, file_name, email, result, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		var resultBytes []byte
		if err := rows.Scan(&rec.ID, &rec.FileName, &rec.Email, &resultBytes, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		if err := json.Unmarshal(resultBytes, &rec.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
