// Package mock provides a deterministic EmotionProvider for tests and
// local development without a detection backend.
package mock

import (
	"context"
	"crypto/sha256"

	"github.com/moodlens/moodlens/internal/provider"
)

// minImageBytes below which the payload is treated as not being an image
const minImageBytes = 100

var labels = []string{"angry", "disgust", "fear", "happy", "neutral", "sad", "surprise"}

// Provider implements provider.EmotionProvider with scores derived from an
// image hash, so the same image always yields the same prediction.
type Provider struct{}

// Ensure Provider implements provider.EmotionProvider at compile time
var _ provider.EmotionProvider = (*Provider)(nil)

// New creates a mock provider
func New() *Provider {
	return &Provider{}
}

// DetectEmotions returns a single face whose scores are derived from the
// SHA-256 of the image. Tiny payloads simulate a frame with no face.
func (p *Provider) DetectEmotions(ctx context.Context, image []byte) ([]provider.FaceEmotions, error) {
	if len(image) < minImageBytes {
		return []provider.FaceEmotions{}, nil
	}

	return []provider.FaceEmotions{
		{
			BoundingBox: provider.BoundingBox{
				X:      0.1,
				Y:      0.1,
				Width:  0.8,
				Height: 0.8,
			},
			Scores: generateScores(image),
		},
	}, nil
}

// generateScores spreads hash bytes over the label set and normalizes to a
// distribution summing to 1.
func generateScores(image []byte) map[string]float64 {
	hash := sha256.Sum256(image)

	var sum float64
	raw := make([]float64, len(labels))
	for i := range labels {
		raw[i] = float64(hash[i]) + 1
		sum += raw[i]
	}

	scores := make(map[string]float64, len(labels))
	for i, label := range labels {
		scores[label] = raw[i] / sum
	}
	return scores
}
