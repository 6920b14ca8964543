// Package imaging converts browser-supplied data URLs into decoded images.
package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/moodlens/moodlens/internal/domain"
)

// maxImageSize bounds the decoded payload (10MB).
const maxImageSize = 10 * 1024 * 1024

// ParseDataURL splits a "data:<mime>;base64,<payload>" string and decodes
// the payload. Returns the raw encoded image bytes and the declared MIME
// type. A bare base64 string without the comma-separated header is invalid.
func ParseDataURL(s string) ([]byte, string, error) {
	header, encoded, found := strings.Cut(s, ",")
	if !found {
		return nil, "", domain.ErrInvalidImage
	}

	mimeType := parseMIME(header)

	// Browsers emit standard base64 in canvas.toDataURL; be lenient about
	// surrounding whitespace only.
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, "", domain.ErrInvalidImage.WithError(err)
	}

	if len(raw) == 0 {
		return nil, "", domain.ErrInvalidImage
	}
	if len(raw) > maxImageSize {
		return nil, "", domain.ErrImageTooLarge
	}

	return raw, mimeType, nil
}

// parseMIME extracts the MIME type from a data URL header such as
// "data:image/png;base64". Empty when the header carries none.
func parseMIME(header string) string {
	rest, ok := strings.CutPrefix(header, "data:")
	if !ok {
		return ""
	}
	mimeType, _, _ := strings.Cut(rest, ";")
	return mimeType
}

// Decode decodes raw JPEG or PNG bytes into a pixel buffer.
func Decode(raw []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", domain.ErrInvalidImage.WithError(err)
	}
	return img, format, nil
}
