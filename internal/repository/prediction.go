package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moodlens/moodlens/internal/domain"
)

type PredictionRepository struct {
	pool PgxPool
}

func NewPredictionRepository(pool PgxPool) *PredictionRepository {
	return &PredictionRepository{pool: pool}
}

// Create appends one prediction row. The store is append-only: rows are
// never updated or deleted by the application.
func (r *PredictionRepository) Create(ctx context.Context, p *domain.Prediction) error {
	query := `
		INSERT INTO predictions (id, emotion, confidence, latency_ms, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	err := r.pool.QueryRow(ctx, query,
		p.ID,
		p.Emotion,
		p.Confidence,
		p.LatencyMs,
	).Scan(&p.CreatedAt)

	if err != nil {
		return fmt.Errorf("create prediction: %w", err)
	}

	return nil
}

// ListRecent returns the most recent predictions, newest first.
func (r *PredictionRepository) ListRecent(ctx context.Context, limit int) ([]domain.Prediction, error) {
	query := `
		SELECT id, emotion, confidence, latency_ms, created_at
		FROM predictions
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent predictions: %w", err)
	}
	defer rows.Close()

	predictions := make([]domain.Prediction, 0, limit)
	for rows.Next() {
		var p domain.Prediction
		if err := rows.Scan(&p.ID, &p.Emotion, &p.Confidence, &p.LatencyMs, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		predictions = append(predictions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate predictions: %w", err)
	}

	return predictions, nil
}

// CountByEmotion aggregates stored predictions per emotion label.
func (r *PredictionRepository) CountByEmotion(ctx context.Context) (*domain.EmotionCounts, error) {
	query := `
		SELECT emotion, COUNT(*) AS total
		FROM predictions
		GROUP BY emotion
		ORDER BY total DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count predictions by emotion: %w", err)
	}
	defer rows.Close()

	counts := &domain.EmotionCounts{
		ByEmotion: make(map[string]int64),
	}
	for rows.Next() {
		var emotion string
		var total int64
		if err := rows.Scan(&emotion, &total); err != nil {
			return nil, fmt.Errorf("scan emotion count: %w", err)
		}
		counts.ByEmotion[emotion] = total
		counts.Total += total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate emotion counts: %w", err)
	}

	return counts, nil
}
