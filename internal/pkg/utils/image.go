package utils

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const MaxLogoBytes = 2 << 20

var allowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

type DecodedImage struct {
	Data        []byte
	ContentType string
	Extension   string
}

// DecodeBase64Image accepts raw base64 or a data URL and sniffs the content
// type from the decoded bytes, never from the client supplied prefix.
func DecodeBase64Image(encoded string) (*DecodedImage, error) {
	encoded = strings.TrimSpace(encoded)
	if idx := strings.Index(encoded, ";base64,"); strings.HasPrefix(encoded, "data:") && idx >= 0 {
		encoded = encoded[idx+len(";base64,"):]
	}
	if encoded == "" {
		return nil, errors.New("empty image")
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	if len(data) > MaxLogoBytes {
		return nil, fmt.Errorf("image is %d bytes, limit is %d", len(data), MaxLogoBytes)
	}

	contentType := http.DetectContentType(data)
	if contentType == "application/octet-stream" && isWebP(data) {
		contentType = "image/webp"
	}
	extension, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, fmt.Errorf("unsupported image type %s", contentType)
	}

	return &DecodedImage{Data: data, ContentType: contentType, Extension: extension}, nil
}

func isWebP(data []byte) bool {
	return len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP"))
}
