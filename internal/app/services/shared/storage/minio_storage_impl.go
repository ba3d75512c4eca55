package storage

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/exceptions"
	"bhzdravlje-service/internal/pkg/utils"
	"bytes"
	"context"
	"strings"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient   *minio.Client
	BucketName    string
	PublicBaseURL string
	Log           *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, bucketName, publicBaseURL string, logger *zap.Logger) contracts.Storage {
	return &minioStorage{
		MinioClient:   minioClient,
		BucketName:    bucketName,
		PublicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		Log:           logger,
	}
}

func (m *minioStorage) UploadImage(ctx context.Context, data []byte, objectName, contentType string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	m.Log.Info("minioStorage.UploadImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketKey, m.BucketName),
		zap.String(constvars.LoggingObjectKey, objectName),
	)

	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		m.Log.Error("minioStorage.UploadImage error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, m.BucketName),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return m.PublicBaseURL + "/" + m.BucketName + "/" + objectName, nil
}

func (m *minioStorage) Ping(ctx context.Context) error {
	_, err := m.MinioClient.BucketExists(ctx, m.BucketName)
	return err
}
