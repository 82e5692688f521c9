package service

import (
	"bytes"
	"encoding/base64"
	"image"
	"io"

	"skillconnect/internal/models"

	// Registered image formats accepted for uploads.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/chai2010/webp"
)

// EncodeImageDataURL reads an uploaded image, verifies it decodes as one of
// the accepted formats, and returns it embedded as a base64 data URL. maxSize
// bounds the accepted upload in bytes.
func EncodeImageDataURL(r io.Reader, maxSize int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return "", models.NewInternalError(err)
	}
	if int64(len(data)) > maxSize {
		return "", models.NewValidationError("Image too large")
	}
	if len(data) == 0 {
		return "", models.NewValidationError("Add a caption and image")
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", models.NewValidationError("Unsupported image format")
	}

	return "data:image/" + format + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
