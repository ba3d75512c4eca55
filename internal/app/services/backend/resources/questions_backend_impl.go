package resources

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/app/services/backend/apiclient"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/requests"
	"bhzdravlje-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type questionBackend struct {
	*resource[models.Question]
}

func NewQuestionBackend(client *apiclient.Client, logger *zap.Logger) contracts.QuestionBackend {
	return &questionBackend{
		resource: newResource[models.Question](client, logger, "question", constvars.ResourceQuestions),
	}
}

func (b *questionBackend) Create(ctx context.Context, request *requests.CreateQuestion) (*models.Question, error) {
	requestID := utils.GetRequestID(ctx)
	b.log.Info("questionBackend.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	question := new(models.Question)
	if err := b.client.Post(ctx, b.path, request, question); err != nil {
		b.log.Error("questionBackend.Create error posting question",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	b.log.Info("questionBackend.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlugKey, question.Slug),
	)
	return question, nil
}
