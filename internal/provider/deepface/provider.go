package deepface

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/moodlens/moodlens/internal/provider"
)

// Provider implements provider.EmotionProvider using the DeepFace API
type Provider struct {
	client *Client
}

// Ensure Provider implements provider.EmotionProvider at compile time
var _ provider.EmotionProvider = (*Provider)(nil)

// NewProvider creates a new DeepFace provider
func NewProvider(config Config) *Provider {
	return &Provider{
		client: NewClient(config),
	}
}

// DetectEmotions detects faces and returns one emotion-score mapping per
// face. DeepFace reports emotion scores as percentages; they are normalized
// to [0,1] here.
func (p *Provider) DetectEmotions(ctx context.Context, image []byte) ([]provider.FaceEmotions, error) {
	if len(image) == 0 {
		return nil, ErrInvalidImageFormat
	}

	imageBase64 := base64.StdEncoding.EncodeToString(image)

	resp, err := p.client.Analyze(ctx, imageBase64)
	if err != nil {
		return nil, fmt.Errorf("detect emotions: %w", err)
	}

	faces := make([]provider.FaceEmotions, 0, len(resp.Results))
	for _, result := range resp.Results {
		scores := make(map[string]float64, len(result.Emotion))
		for label, pct := range result.Emotion {
			scores[label] = clamp01(pct / 100)
		}

		faces = append(faces, provider.FaceEmotions{
			BoundingBox: provider.BoundingBox{
				X:      float64(result.Region.X),
				Y:      float64(result.Region.Y),
				Width:  float64(result.Region.W),
				Height: float64(result.Region.H),
			},
			Scores: scores,
		})
	}

	return faces, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
