package resources

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/app/services/backend/apiclient"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/utils"
	"context"
	"net/url"

	"go.uber.org/zap"
)

type registrationBackend struct {
	client *apiclient.Client
	log    *zap.Logger
}

func NewRegistrationBackend(client *apiclient.Client, logger *zap.Logger) contracts.RegistrationBackend {
	return &registrationBackend{
		client: client,
		log:    logger,
	}
}

func (b *registrationBackend) Register(ctx context.Context, registrationType string, payload map[string]interface{}) (map[string]interface{}, error) {
	requestID := utils.GetRequestID(ctx)
	b.log.Info("registrationBackend.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRegistrationTypeKey, registrationType),
	)

	created := make(map[string]interface{})
	err := b.client.Post(ctx, constvars.ResourceRegistrations+"/"+url.PathEscape(registrationType), payload, &created)
	if err != nil {
		b.log.Error("registrationBackend.Register error posting registration",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRegistrationTypeKey, registrationType),
			zap.Error(err),
		)
		return nil, err
	}

	b.log.Info("registrationBackend.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRegistrationTypeKey, registrationType),
	)
	return created, nil
}
