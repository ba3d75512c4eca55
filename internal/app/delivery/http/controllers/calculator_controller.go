package controllers

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/requests"
	"bhzdravlje-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type CalculatorController struct {
	Log               *zap.Logger
	CalculatorUsecase contracts.CalculatorUsecase
}

func NewCalculatorController(logger *zap.Logger, calculatorUsecase contracts.CalculatorUsecase) *CalculatorController {
	return &CalculatorController{
		Log:               logger,
		CalculatorUsecase: calculatorUsecase,
	}
}

func (ctrl *CalculatorController) CalculateBMI(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CalculateBMI)
	if err := utils.ParseJSONBody(r, request); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.CalculatorUsecase.CalculateBMI(r.Context(), request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CalculateBMISuccessMessage, response)
}

func (ctrl *CalculatorController) CalculateDueDate(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CalculateDueDate)
	if err := utils.ParseJSONBody(r, request); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.CalculatorUsecase.CalculateDueDate(r.Context(), request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CalculateDueDateSuccessMessage, response)
}
