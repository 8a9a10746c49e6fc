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

type WorkCenterController struct {
	workCenterService *services.WorkCenterService
	logger            *zap.Logger
}

func NewWorkCenterController(workCenterService *services.WorkCenterService, logger *zap.Logger) *WorkCenterController {
	return &WorkCenterController{workCenterService: workCenterService, logger: logger}
}

func (c *WorkCenterController) GetWorkCenters(ctx echo.Context) error {
	res, err := c.workCenterService.GetWorkCenters(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "work centers", http.StatusOK)
}

func (c *WorkCenterController) FindWorkCenter(ctx echo.Context) error {
	res, err := c.workCenterService.FindWorkCenter(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "work center", http.StatusOK)
}

func (c *WorkCenterController) CreateWorkCenter(ctx echo.Context) error {
	var payload dto.CreateWorkCenterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.workCenterService.CreateWorkCenter(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "work center created", http.StatusCreated)
}

func (c *WorkCenterController) UpdateWorkCenter(ctx echo.Context) error {
	var payload dto.UpdateWorkCenterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.workCenterService.UpdateWorkCenter(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "work center updated", http.StatusOK)
}

func (c *WorkCenterController) DeleteWorkCenter(ctx echo.Context) error {
	if err := c.workCenterService.DeleteWorkCenter(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "work center deleted", http.StatusOK)
}
