package resources

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/app/services/backend/apiclient"
	"bhzdravlje-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type facilityBackend[T models.Facility] struct {
	*resource[T]
}

func NewClinicBackend(client *apiclient.Client, logger *zap.Logger) contracts.FacilityBackend[models.Clinic] {
	return &facilityBackend[models.Clinic]{
		resource: newResource[models.Clinic](client, logger, "clinic", constvars.ResourceClinics),
	}
}

func NewLaboratoryBackend(client *apiclient.Client, logger *zap.Logger) contracts.FacilityBackend[models.Laboratory] {
	return &facilityBackend[models.Laboratory]{
		resource: newResource[models.Laboratory](client, logger, "laboratory", constvars.ResourceLaboratories),
	}
}

func NewSpaBackend(client *apiclient.Client, logger *zap.Logger) contracts.FacilityBackend[models.Spa] {
	return &facilityBackend[models.Spa]{
		resource: newResource[models.Spa](client, logger, "spa", constvars.ResourceSpas),
	}
}

func NewCareHomeBackend(client *apiclient.Client, logger *zap.Logger) contracts.FacilityBackend[models.CareHome] {
	return &facilityBackend[models.CareHome]{
		resource: newResource[models.CareHome](client, logger, "careHome", constvars.ResourceCareHomes),
	}
}
