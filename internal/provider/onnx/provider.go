// Package onnx runs a local facial-emotion classifier through ONNX Runtime.
// Unlike the remote providers it performs no face localization: the whole
// frame is classified and reported as a single face.
package onnx

import (
	"context"
	"fmt"

	"github.com/moodlens/moodlens/internal/imaging"
	"github.com/moodlens/moodlens/internal/provider"
)

// Provider implements provider.EmotionProvider with a local ONNX model
type Provider struct {
	model *Model
}

// Ensure Provider implements provider.EmotionProvider at compile time
var _ provider.EmotionProvider = (*Provider)(nil)

// NewProvider loads the model and metadata from disk
func NewProvider(modelPath, metadataPath string) (*Provider, error) {
	model, err := LoadModel(modelPath, metadataPath)
	if err != nil {
		return nil, fmt.Errorf("load emotion model: %w", err)
	}
	return &Provider{model: model}, nil
}

// DetectEmotions classifies the image and returns a single emotion-score
// mapping covering the full frame.
func (p *Provider) DetectEmotions(ctx context.Context, image []byte) ([]provider.FaceEmotions, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, _, err := imaging.Decode(image)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	meta := p.model.Metadata()
	input := preprocess(img, meta.ImageSize)

	logits, err := p.model.Run(input)
	if err != nil {
		return nil, fmt.Errorf("run emotion model: %w", err)
	}

	probs := softmax(logits)
	scores := make(map[string]float64, len(meta.Classes))
	for i, class := range meta.Classes {
		if i < len(probs) {
			scores[class] = probs[i]
		}
	}

	bounds := img.Bounds()
	return []provider.FaceEmotions{
		{
			BoundingBox: provider.BoundingBox{
				X:      0,
				Y:      0,
				Width:  float64(bounds.Dx()),
				Height: float64(bounds.Dy()),
			},
			Scores: scores,
		},
	}, nil
}

// Close releases the underlying ONNX session.
func (p *Provider) Close() {
	p.model.Close()
}
