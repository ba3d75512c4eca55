package controllers

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/requests"
	"bhzdravlje-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type QuestionController struct {
	*DirectoryController
	QuestionUsecase contracts.QuestionUsecase
}

func NewQuestionController(logger *zap.Logger, questionUsecase contracts.QuestionUsecase, timeout time.Duration) *QuestionController {
	return &QuestionController{
		DirectoryController: NewDirectoryController(logger, questionUsecase, timeout),
		QuestionUsecase:     questionUsecase,
	}
}

func (ctrl *QuestionController) AskQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	request := new(requests.CreateQuestion)
	if err := utils.ParseJSONBody(r, request); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	question, err := ctrl.QuestionUsecase.AskQuestion(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateQuestionSuccessMessage, question)
}
