package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
)

func runWorkCenterRouter(secure *echo.Group, workCenterService *services.WorkCenterService, logger *zap.Logger) {
	ctrl := controllers.NewWorkCenterController(workCenterService, logger)

	wcGroup := secure.Group("/work-centers")
	{
		wcGroup.GET("", ctrl.GetWorkCenters)
		wcGroup.POST("", ctrl.CreateWorkCenter)
		wcGroup.GET("/:id", ctrl.FindWorkCenter)
		wcGroup.PUT("/:id", ctrl.UpdateWorkCenter)
		wcGroup.DELETE("/:id", ctrl.DeleteWorkCenter)
	}
}
