package provider

import "context"

// EmotionProvider is the boundary to the external facial-emotion-detection
// capability. Implementations receive raw encoded image bytes (JPEG/PNG)
// and return one emotion-score mapping per detected face.
type EmotionProvider interface {
	// DetectEmotions detects faces in the image and returns, for each face,
	// a mapping from emotion label to a score in [0,1]. An image with no
	// faces yields an empty slice, not an error.
	DetectEmotions(ctx context.Context, image []byte) ([]FaceEmotions, error)
}

// FaceEmotions is the emotion-score mapping for one detected face.
type FaceEmotions struct {
	BoundingBox BoundingBox        `json:"bounding_box"`
	Scores      map[string]float64 `json:"scores"`
}

// BoundingBox represents the face area in the image
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TopEmotion returns the highest-scoring label in the mapping. ok is false
// when the mapping is empty. Ties break towards the lexicographically
// smaller label so the result is deterministic.
func TopEmotion(scores map[string]float64) (label string, confidence float64, ok bool) {
	for l, c := range scores {
		if !ok || c > confidence || (c == confidence && l < label) {
			label, confidence, ok = l, c, true
		}
	}
	return label, confidence, ok
}
