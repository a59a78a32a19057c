package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lintora.co/server/internal/model"
)

type reviewStore struct {
	pool *pgxpool.Pool
}

func newReviewStore(pool *pgxpool.Pool) ReviewStore {
	return &reviewStore{pool: pool}
}

func (s *reviewStore) Create(ctx context.Context, record *model.ReviewRecord) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO reviews (
			id, user_id, language, filename, code_size,
			findings, overall_score, tokens_used, analysis_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`,
		record.ID, record.UserID, record.Language, record.Filename,
		record.CodeSize, record.Findings, record.OverallScore,
		record.TokensUsed, record.AnalysisTime,
	).Scan(&record.CreatedAt)
}

func (s *reviewStore) ListByUser(ctx context.Context, userID int64, limit int) ([]model.ReviewRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, language, filename, code_size,
			findings, overall_score, tokens_used, analysis_time, created_at
		FROM reviews
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.ReviewRecord, error) {
		var r model.ReviewRecord
		err := row.Scan(
			&r.ID, &r.UserID, &r.Language, &r.Filename, &r.CodeSize,
			&r.Findings, &r.OverallScore, &r.TokensUsed, &r.AnalysisTime,
			&r.CreatedAt,
		)
		return r, err
	})
}
