package resources

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/app/services/backend/apiclient"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type cityBackend struct {
	*resource[models.City]
}

func NewCityBackend(client *apiclient.Client, logger *zap.Logger) contracts.CityBackend {
	return &cityBackend{
		resource: newResource[models.City](client, logger, "city", constvars.ResourceCities),
	}
}

type specialtyBackend struct {
	client *apiclient.Client
	log    *zap.Logger
}

func NewSpecialtyBackend(client *apiclient.Client, logger *zap.Logger) contracts.SpecialtyBackend {
	return &specialtyBackend{
		client: client,
		log:    logger,
	}
}

func (b *specialtyBackend) FindAll(ctx context.Context) ([]models.Specialty, error) {
	requestID := utils.GetRequestID(ctx)

	var specialties []models.Specialty
	if _, err := b.client.Get(ctx, constvars.ResourceSpecialties, nil, &specialties); err != nil {
		b.log.Error("specialtyBackend.FindAll error fetching specialties",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if specialties == nil {
		specialties = []models.Specialty{}
	}

	b.log.Info("specialtyBackend.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(specialties)),
	)
	return specialties, nil
}
