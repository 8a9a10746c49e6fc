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

type BoardController struct {
	boardService *services.BoardService
	logger       *zap.Logger
}

func NewBoardController(boardService *services.BoardService, logger *zap.Logger) *BoardController {
	return &BoardController{boardService: boardService, logger: logger}
}

func (c *BoardController) GetBoard(ctx echo.Context) error {
	filters, err := utils.ParseBoardFilters(ctx.Request().URL.Query())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	columns, err := c.boardService.GetBoard(ctx.Request().Context(), filters)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.BoardDTO{Columns: columns}, "board", http.StatusOK)
}

func (c *BoardController) MoveCard(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	userID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.MoveCardDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	filters, err := utils.ParseBoardFilters(ctx.Request().URL.Query())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.boardService.MoveCard(reqCtx, userID, payload, filters)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.MoveCardResponseDTO{
		RequestID:     result.RequestID,
		From:          result.From,
		To:            result.To,
		StatusChanged: result.StatusChanged,
		Moved:         result.Moved,
	}, "card moved", http.StatusOK)
}
