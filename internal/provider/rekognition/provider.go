package rekognition

import (
	"context"
	"errors"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/aws/smithy-go"

	"github.com/moodlens/moodlens/internal/provider"
)

const (
	// maxImageSize is the maximum image size supported by AWS Rekognition (5MB)
	maxImageSize = 5 * 1024 * 1024
	// minImageSize is the minimum image size for valid processing
	minImageSize = 100

	errCodeAccessDenied     = "AccessDeniedException"
	errCodeInvalidParameter = "InvalidParameterException"
	errCodeInvalidImage     = "InvalidImageFormatException"
)

// DetectFacesAPI is the subset of the Rekognition client used here.
// Narrowed for testability.
type DetectFacesAPI interface {
	DetectFaces(ctx context.Context, params *rekognition.DetectFacesInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectFacesOutput, error)
}

// Provider implements provider.EmotionProvider using AWS Rekognition.
// Rekognition's DetectFaces returns per-face emotion confidences when all
// attributes are requested.
type Provider struct {
	api DetectFacesAPI
}

// Ensure Provider implements provider.EmotionProvider at compile time
var _ provider.EmotionProvider = (*Provider)(nil)

// NewProvider creates a Rekognition provider using the AWS default
// credential chain
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &Provider{
		api: rekognition.NewFromConfig(awsCfg),
	}, nil
}

// NewProviderWithAPI creates a provider backed by a caller-supplied client
func NewProviderWithAPI(api DetectFacesAPI) *Provider {
	return &Provider{api: api}
}

// emotionLabels maps Rekognition emotion names onto the lowercase label set
// shared by the other providers. UNKNOWN is dropped.
var emotionLabels = map[types.EmotionName]string{
	types.EmotionNameHappy:     "happy",
	types.EmotionNameSad:       "sad",
	types.EmotionNameAngry:     "angry",
	types.EmotionNameConfused:  "confused",
	types.EmotionNameDisgusted: "disgust",
	types.EmotionNameSurprised: "surprise",
	types.EmotionNameCalm:      "neutral",
	types.EmotionNameFear:      "fear",
}

// validateImage checks if image data is valid for Rekognition processing
func validateImage(image []byte) error {
	if len(image) == 0 {
		return ErrInvalidImage
	}
	if len(image) < minImageSize {
		return fmt.Errorf("%w: image too small (%d bytes, minimum %d)", ErrInvalidImage, len(image), minImageSize)
	}
	if len(image) > maxImageSize {
		return fmt.Errorf("%w: image too large (%d bytes, maximum %d)", ErrInvalidImage, len(image), maxImageSize)
	}
	return nil
}

// DetectEmotions detects faces using the DetectFaces API and maps each
// face's emotion confidences (reported in percent) to scores in [0,1].
func (p *Provider) DetectEmotions(ctx context.Context, image []byte) ([]provider.FaceEmotions, error) {
	if err := validateImage(image); err != nil {
		return nil, err
	}

	input := &rekognition.DetectFacesInput{
		Image: &types.Image{
			Bytes: image,
		},
		Attributes: []types.Attribute{types.AttributeAll},
	}

	output, err := p.api.DetectFaces(ctx, input)
	if err != nil {
		return nil, parseDetectError(err)
	}

	faces := make([]provider.FaceEmotions, 0, len(output.FaceDetails))
	for _, detail := range output.FaceDetails {
		scores := make(map[string]float64, len(detail.Emotions))
		for _, emotion := range detail.Emotions {
			label, ok := emotionLabels[emotion.Type]
			if !ok || emotion.Confidence == nil {
				continue
			}
			scores[label] = float64(*emotion.Confidence) / 100
		}

		face := provider.FaceEmotions{Scores: scores}
		if bb := detail.BoundingBox; bb != nil {
			face.BoundingBox = provider.BoundingBox{
				X:      float64(deref(bb.Left)),
				Y:      float64(deref(bb.Top)),
				Width:  float64(deref(bb.Width)),
				Height: float64(deref(bb.Height)),
			}
		}

		faces = append(faces, face)
	}

	return faces, nil
}

func deref(v *float32) float32 {
	if v == nil {
		return 0
	}
	return *v
}

// parseDetectError interprets AWS API errors into provider errors
func parseDetectError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case errCodeAccessDenied:
			return fmt.Errorf("detect faces: %w", ErrInvalidCredentials)
		case errCodeInvalidParameter, errCodeInvalidImage:
			return fmt.Errorf("detect faces: %w: %s", ErrInvalidImage, apiErr.ErrorMessage())
		}
	}
	return fmt.Errorf("detect faces: %w", err)
}
