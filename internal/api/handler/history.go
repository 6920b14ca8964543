package handler

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/moodlens/moodlens/internal/domain"
)

const maxHistoryLimit = 1000

// HistoryHandler handles history and stats requests
type HistoryHandler struct {
	service      PredictionService
	defaultLimit int
	logger       *slog.Logger
}

// NewHistoryHandler creates a new HistoryHandler instance
func NewHistoryHandler(service PredictionService, defaultLimit int, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{
		service:      service,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// HistoryEntry is one logged prediction in the history response
type HistoryEntry struct {
	Timestamp  string  `json:"timestamp"`
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

// HistoryResponse is the JSON answer of GET /history
type HistoryResponse struct {
	History []HistoryEntry `json:"history"`
}

// StatsResponse is the JSON answer of GET /stats
type StatsResponse struct {
	Total     int64            `json:"total"`
	ByEmotion map[string]int64 `json:"by_emotion"`
}

// History GET /history - most recent predictions, newest first
func (h *HistoryHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", h.defaultLimit)
	if limit < 1 || limit > maxHistoryLimit {
		return domain.ErrInvalidLimit
	}

	predictions, err := h.service.History(c.Context(), limit)
	if err != nil {
		return err
	}

	entries := make([]HistoryEntry, 0, len(predictions))
	for _, p := range predictions {
		entries = append(entries, HistoryEntry{
			Timestamp:  p.CreatedAt.UTC().Format(time.RFC3339),
			Emotion:    p.Emotion,
			Confidence: p.Confidence,
		})
	}

	return c.JSON(HistoryResponse{History: entries})
}

// Stats GET /stats - per-emotion counts over all stored predictions
func (h *HistoryHandler) Stats(c *fiber.Ctx) error {
	counts, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(StatsResponse{
		Total:     counts.Total,
		ByEmotion: counts.ByEmotion,
	})
}
