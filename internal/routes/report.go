package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
)

func runReportRouter(secure *echo.Group, reportService *services.ReportService, logger *zap.Logger) {
	ctrl := controllers.NewReportController(reportService, logger)

	secure.GET("/reports/requests.xlsx", ctrl.GetRequestReport)
}
