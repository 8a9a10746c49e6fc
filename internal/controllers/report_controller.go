package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type ReportController struct {
	reportService *services.ReportService
	logger        *zap.Logger
}

func NewReportController(reportService *services.ReportService, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetRequestReport streams the filtered request list as an XLSX attachment.
func (c *ReportController) GetRequestReport(ctx echo.Context) error {
	filters, err := utils.ParseBoardFilters(ctx.Request().URL.Query())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	file, err := c.reportService.BuildRequestReport(ctx.Request().Context(), filters)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	fileName := fmt.Sprintf("requests_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return file.Write(ctx.Response().Writer)
}
