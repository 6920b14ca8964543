package rekognition

import "errors"

var (
	ErrInvalidImage       = errors.New("invalid image for rekognition")
	ErrInvalidCredentials = errors.New("invalid or missing AWS credentials")
)
