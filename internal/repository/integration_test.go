//go:build integration

package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/moodlens/moodlens/internal/domain"
)

func setupIntegrationTest(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "moodlens_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("postgres://test:test@%s:%s/moodlens_test?sslmode=disable", host, port.Port())

	db, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS predictions (
			id UUID PRIMARY KEY,
			emotion TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			latency_ms BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_predictions_created_at ON predictions (created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_predictions_emotion ON predictions (emotion);
	`)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}

	return db, cleanup
}

func TestPredictionRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupIntegrationTest(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewPredictionRepository(db)

	t.Run("create assigns id and timestamp", func(t *testing.T) {
		p := &domain.Prediction{
			Emotion:    "happy",
			Confidence: 0.97,
			LatencyMs:  120,
		}

		err := repo.Create(ctx, p)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, p.ID)
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("list recent returns newest first", func(t *testing.T) {
		emotions := []string{"sad", "neutral", "surprise"}
		for _, emotion := range emotions {
			err := repo.Create(ctx, &domain.Prediction{
				Emotion:    emotion,
				Confidence: 0.5,
				LatencyMs:  10,
			})
			require.NoError(t, err)
			// Keep created_at strictly increasing
			time.Sleep(5 * time.Millisecond)
		}

		predictions, err := repo.ListRecent(ctx, 3)
		require.NoError(t, err)
		require.Len(t, predictions, 3)
		assert.Equal(t, "surprise", predictions[0].Emotion)
		assert.Equal(t, "neutral", predictions[1].Emotion)
		assert.Equal(t, "sad", predictions[2].Emotion)

		for i := 1; i < len(predictions); i++ {
			assert.False(t, predictions[i-1].CreatedAt.Before(predictions[i].CreatedAt))
		}
	})

	t.Run("list recent respects limit", func(t *testing.T) {
		predictions, err := repo.ListRecent(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, predictions, 2)
	})

	t.Run("count by emotion aggregates rows", func(t *testing.T) {
		counts, err := repo.CountByEmotion(ctx)
		require.NoError(t, err)

		assert.Equal(t, int64(4), counts.Total)
		assert.Equal(t, int64(1), counts.ByEmotion["happy"])
		assert.Equal(t, int64(1), counts.ByEmotion["sad"])
	})
}
