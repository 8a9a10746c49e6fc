package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
)

func runDashboardRouter(secure *echo.Group, dashboardService *services.DashboardService, logger *zap.Logger) {
	ctrl := controllers.NewDashboardController(dashboardService, logger)

	secure.GET("/dashboard", ctrl.GetDashboard)
}
