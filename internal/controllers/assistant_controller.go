package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/apperrors"
	"gearguard/pkg/utils"
)

type AssistantController struct {
	assistantService *services.AssistantService
	logger           *zap.Logger
}

func NewAssistantController(assistantService *services.AssistantService, logger *zap.Logger) *AssistantController {
	return &AssistantController{assistantService: assistantService, logger: logger}
}

func (c *AssistantController) SuggestAssignment(ctx echo.Context) error {
	var payload dto.SuggestAssignmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.assistantService.SuggestAssignment(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "assignment suggested", http.StatusOK)
}
