package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/moodlens/moodlens/internal/domain"
)

// PgxPool is the subset of pgxpool.Pool the repositories use. pgxmock
// satisfies it too, which keeps repository tests off a live database.
type PgxPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PredictionRepositoryInterface defines operations for prediction data access
type PredictionRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Prediction) error
	ListRecent(ctx context.Context, limit int) ([]domain.Prediction, error)
	CountByEmotion(ctx context.Context) (*domain.EmotionCounts, error)
}
