package contracts

import "context"

type Storage interface {
	// UploadImage stores data and returns its public URL.
	UploadImage(ctx context.Context, data []byte, objectName, contentType string) (string, error)
	Ping(ctx context.Context) error
}
