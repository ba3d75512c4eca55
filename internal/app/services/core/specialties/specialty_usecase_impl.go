package specialties

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/app/services/core/directory"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type specialtyUsecase struct {
	SpecialtyBackend contracts.SpecialtyBackend
	Cache            directory.Cache
	Log              *zap.Logger
}

func NewSpecialtyUsecase(specialtyBackend contracts.SpecialtyBackend, cache directory.Cache, logger *zap.Logger) contracts.SpecialtyUsecase {
	return &specialtyUsecase{
		SpecialtyBackend: specialtyBackend,
		Cache:            cache,
		Log:              logger,
	}
}

func (uc *specialtyUsecase) FindAll(ctx context.Context) ([]models.Specialty, error) {
	specialties, err := directory.Reference(ctx, uc.Cache, constvars.RedisKeySpecialtyList, uc.SpecialtyBackend.FindAll)
	if err != nil {
		uc.Log.Error("specialtyUsecase.FindAll error fetching specialties",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	return specialties, nil
}
