package utils

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateObjectName builds a unique storage object name, e.g.
// "registracije/klinika/20240102_150405_<uuid>.png".
func GenerateObjectName(prefix, entityType, fileExtension string) string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	return fmt.Sprintf("%s/%s/%s_%s%s", prefix, entityType, timestamp, uuid.NewString(), fileExtension)
}
