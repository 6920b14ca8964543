package service

import (
	"context"
	"fmt"
	"time"

	"github.com/moodlens/moodlens/internal/domain"
	"github.com/moodlens/moodlens/internal/provider"
)

type PredictionRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Prediction) error
	ListRecent(ctx context.Context, limit int) ([]domain.Prediction, error)
	CountByEmotion(ctx context.Context) (*domain.EmotionCounts, error)
}

// PredictionService runs an image through the emotion provider, picks the
// top emotion of the first detected face and appends the result to the
// store.
type PredictionService struct {
	repo     PredictionRepositoryInterface
	provider provider.EmotionProvider
}

func NewPredictionService(repo PredictionRepositoryInterface, emotionProvider provider.EmotionProvider) *PredictionService {
	return &PredictionService{
		repo:     repo,
		provider: emotionProvider,
	}
}

// Predict detects emotions in raw encoded image bytes and persists the
// winning label. Returns domain.ErrNoFaceDetected when the provider finds
// no faces and domain.ErrNoEmotionScores when the first face carries an
// empty mapping; neither case is persisted.
func (s *PredictionService) Predict(ctx context.Context, imageBytes []byte) (*domain.Prediction, error) {
	start := time.Now()

	faces, err := s.provider.DetectEmotions(ctx, imageBytes)
	if err != nil {
		return nil, fmt.Errorf("detect emotions: %w", err)
	}

	if len(faces) == 0 {
		return nil, domain.ErrNoFaceDetected
	}

	// First detected face, the original demo behavior.
	emotion, confidence, ok := provider.TopEmotion(faces[0].Scores)
	if !ok {
		return nil, domain.ErrNoEmotionScores
	}

	prediction := &domain.Prediction{
		Emotion:    emotion,
		Confidence: confidence,
		LatencyMs:  time.Since(start).Milliseconds(),
	}

	if err := s.repo.Create(ctx, prediction); err != nil {
		return nil, err
	}

	return prediction, nil
}

// History returns the most recent predictions, newest first.
func (s *PredictionService) History(ctx context.Context, limit int) ([]domain.Prediction, error) {
	return s.repo.ListRecent(ctx, limit)
}

// Stats aggregates stored predictions per emotion label.
func (s *PredictionService) Stats(ctx context.Context) (*domain.EmotionCounts, error) {
	return s.repo.CountByEmotion(ctx)
}
