package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodlens/moodlens/internal/domain"
)

// testPNG encodes a small solid-color PNG
func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestParseDataURL(t *testing.T) {
	pngBytes := testPNG(t, 4, 4)
	encoded := base64.StdEncoding.EncodeToString(pngBytes)

	tests := []struct {
		name     string
		input    string
		wantMIME string
		wantErr  error
	}{
		{
			name:     "valid png data url",
			input:    "data:image/png;base64," + encoded,
			wantMIME: "image/png",
		},
		{
			name:     "valid jpeg data url",
			input:    "data:image/jpeg;base64," + encoded,
			wantMIME: "image/jpeg",
		},
		{
			name:     "header without data prefix",
			input:    ";base64," + encoded,
			wantMIME: "",
		},
		{
			name:    "missing comma separator",
			input:   encoded,
			wantErr: domain.ErrInvalidImage,
		},
		{
			name:    "invalid base64 payload",
			input:   "data:image/png;base64,!!!not-base64!!!",
			wantErr: domain.ErrInvalidImage,
		},
		{
			name:    "empty payload",
			input:   "data:image/png;base64,",
			wantErr: domain.ErrInvalidImage,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: domain.ErrInvalidImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, mimeType, err := ParseDataURL(tt.input)

			if tt.wantErr != nil {
				require.Error(t, err)
				var appErr *domain.AppError
				assert.True(t, errors.As(err, &appErr))
				assert.Equal(t, tt.wantErr.(*domain.AppError).Code, appErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMIME, mimeType)
			assert.Equal(t, pngBytes, raw)
		})
	}
}

func TestParseDataURL_TooLarge(t *testing.T) {
	// Payload just over the 10MB decoded limit
	big := make([]byte, maxImageSize+1)
	input := "data:image/png;base64," + base64.StdEncoding.EncodeToString(big)

	_, _, err := ParseDataURL(input)
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domain.ErrImageTooLarge.Code, appErr.Code)
}

func TestDecode(t *testing.T) {
	pngBytes := testPNG(t, 8, 6)

	img, format, err := Decode(pngBytes)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())
}

func TestDecode_InvalidBytes(t *testing.T) {
	_, _, err := Decode([]byte("definitely not an image"))
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domain.ErrInvalidImage.Code, appErr.Code)
}

func TestParseDataURL_Roundtrip(t *testing.T) {
	pngBytes := testPNG(t, 16, 16)
	input := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)

	raw, _, err := ParseDataURL(input)
	require.NoError(t, err)

	img, format, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 16, img.Bounds().Dx())
}
