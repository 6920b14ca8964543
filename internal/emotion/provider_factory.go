package emotion

import (
	"context"
	"fmt"

	"github.com/moodlens/moodlens/internal/config"
	"github.com/moodlens/moodlens/internal/provider"
	"github.com/moodlens/moodlens/internal/provider/deepface"
	"github.com/moodlens/moodlens/internal/provider/mock"
	"github.com/moodlens/moodlens/internal/provider/onnx"
	"github.com/moodlens/moodlens/internal/provider/rekognition"
)

// ProviderType defines supported emotion detection provider types
type ProviderType string

const (
	// ProviderTypeDeepFace is the DeepFace HTTP provider (local, for dev/test)
	ProviderTypeDeepFace ProviderType = "deepface"
	// ProviderTypeRekognition is the AWS Rekognition provider (cloud)
	ProviderTypeRekognition ProviderType = "rekognition"
	// ProviderTypeONNX is the in-process ONNX classifier
	ProviderTypeONNX ProviderType = "onnx"
	// ProviderTypeMock is a deterministic provider for tests
	ProviderTypeMock ProviderType = "mock"
)

// NewEmotionProvider creates an EmotionProvider instance based on configuration
//
// Environment variables:
//   - PROVIDER_TYPE: "deepface", "rekognition", "onnx" or "mock" (default: "deepface")
//   - DEEPFACE_URL: DeepFace API URL (default: "http://localhost:5000")
//   - AWS_REGION: AWS region for Rekognition (default: "us-east-1")
//   - MODEL_PATH / MODEL_METADATA_PATH: local ONNX model files
func NewEmotionProvider(ctx context.Context, cfg *config.Config) (provider.EmotionProvider, error) {
	switch ProviderType(cfg.ProviderType) {
	case ProviderTypeRekognition:
		prov, err := rekognition.NewProvider(ctx, rekognition.Config{Region: cfg.AWSRegion})
		if err != nil {
			return nil, fmt.Errorf("create rekognition provider: %w", err)
		}
		return prov, nil

	case ProviderTypeONNX:
		prov, err := onnx.NewProvider(cfg.ModelPath, cfg.ModelMetadataPath)
		if err != nil {
			return nil, fmt.Errorf("create onnx provider: %w", err)
		}
		return prov, nil

	case ProviderTypeMock:
		return mock.New(), nil

	case ProviderTypeDeepFace, "":
		// Default to DeepFace for dev/test environments
		deepfaceConfig := deepface.DefaultConfig()
		if cfg.DeepFaceURL != "" {
			deepfaceConfig.BaseURL = cfg.DeepFaceURL
		}
		return deepface.NewProvider(deepfaceConfig), nil

	default:
		return nil, fmt.Errorf("unknown provider type: %s (supported: %s, %s, %s, %s)",
			cfg.ProviderType, ProviderTypeDeepFace, ProviderTypeRekognition, ProviderTypeONNX, ProviderTypeMock)
	}
}
