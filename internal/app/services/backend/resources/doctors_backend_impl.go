package resources

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/app/services/backend/apiclient"
	"bhzdravlje-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type doctorBackend struct {
	*resource[models.Doctor]
}

func NewDoctorBackend(client *apiclient.Client, logger *zap.Logger) contracts.DoctorBackend {
	return &doctorBackend{
		resource: newResource[models.Doctor](client, logger, "doctor", constvars.ResourceDoctors),
	}
}
