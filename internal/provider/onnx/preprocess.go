package onnx

import (
	"image"
	"math"

	"github.com/nfnt/resize"
)

// preprocess resizes the image to size x size and lays the normalized RGB
// values out channel-first (CHW), the layout the classifier was trained on.
func preprocess(img image.Image, size int) []float32 {
	target := uint(size)
	resized := resize.Resize(target, target, img, resize.Lanczos3)

	bounds := resized.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	input := make([]float32, 3*width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := resized.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()

			idx := y*width + x
			input[idx] = float32(r) / 65535.0
			input[width*height+idx] = float32(g) / 65535.0
			input[2*width*height+idx] = float32(b) / 65535.0
		}
	}

	return input
}

// softmax turns raw logits into a probability distribution. Numerically
// stabilized by subtracting the max logit.
func softmax(logits []float32) []float64 {
	if len(logits) == 0 {
		return nil
	}

	maxLogit := logits[0]
	for _, v := range logits[1:] {
		if v > maxLogit {
			maxLogit = v
		}
	}

	probs := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		probs[i] = math.Exp(float64(v - maxLogit))
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}

	return probs
}
