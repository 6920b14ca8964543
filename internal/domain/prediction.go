package domain

import (
	"time"

	"github.com/google/uuid"
)

// Prediction is one logged emotion prediction: the label chosen for the
// first detected face and its confidence in [0,1].
type Prediction struct {
	ID         uuid.UUID `json:"id"`
	Emotion    string    `json:"emotion"`
	Confidence float64   `json:"confidence"`
	LatencyMs  int64     `json:"latency_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// EmotionCounts aggregates stored predictions per emotion label.
type EmotionCounts struct {
	Total     int64            `json:"total"`
	ByEmotion map[string]int64 `json:"by_emotion"`
}
