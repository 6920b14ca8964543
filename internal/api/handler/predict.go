package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/moodlens/moodlens/internal/domain"
	"github.com/moodlens/moodlens/internal/imaging"
)

// PredictionService interface for the service
type PredictionService interface {
	Predict(ctx context.Context, imageBytes []byte) (*domain.Prediction, error)
	History(ctx context.Context, limit int) ([]domain.Prediction, error)
	Stats(ctx context.Context) (*domain.EmotionCounts, error)
}

// PredictHandler handles prediction requests
type PredictHandler struct {
	service PredictionService
	logger  *slog.Logger
}

// NewPredictHandler creates a new PredictHandler instance
func NewPredictHandler(service PredictionService, logger *slog.Logger) *PredictHandler {
	return &PredictHandler{
		service: service,
		logger:  logger,
	}
}

// PredictRequest is the JSON body of POST /predict
type PredictRequest struct {
	Image string `json:"image"`
}

// PredictResponse is the JSON answer of POST /predict. Emotion is null and
// Message is set when no face or no scores were found.
type PredictResponse struct {
	Emotion    *string `json:"emotion"`
	Confidence float64 `json:"confidence"`
	Message    string  `json:"message,omitempty"`
}

// Predict POST /predict - detect the dominant emotion in a data-URL image
func (h *PredictHandler) Predict(c *fiber.Ctx) error {
	// 1. Parse body
	var req PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrMissingImage.WithError(err)
	}
	if req.Image == "" {
		return domain.ErrMissingImage
	}

	// 2. Decode the data URL into raw image bytes
	imageBytes, mimeType, err := imaging.ParseDataURL(req.Image)
	if err != nil {
		return err
	}

	h.logger.Debug("predict request",
		slog.String("mime_type", mimeType),
		slog.Int("image_bytes", len(imageBytes)),
	)

	// 3. Detect, pick top emotion, persist
	prediction, err := h.service.Predict(c.Context(), imageBytes)
	if err != nil {
		// Frames without a usable face answer 200 with a message, so the
		// browser keeps polling without error handling.
		if errors.Is(err, domain.ErrNoFaceDetected) {
			return c.JSON(PredictResponse{Message: "No face detected"})
		}
		if errors.Is(err, domain.ErrNoEmotionScores) {
			return c.JSON(PredictResponse{Message: "No emotion scores"})
		}
		return err
	}

	// 4. Return the winning label
	return c.JSON(PredictResponse{
		Emotion:    &prediction.Emotion,
		Confidence: prediction.Confidence,
	})
}
