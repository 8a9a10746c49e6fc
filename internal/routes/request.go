package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
)

func runRequestRouter(secure *echo.Group, requestService *services.RequestService, logger *zap.Logger) {
	ctrl := controllers.NewRequestController(requestService, logger)

	requestGroup := secure.Group("/requests")
	{
		requestGroup.GET("", ctrl.GetRequests)
		requestGroup.POST("", ctrl.CreateRequest)
		requestGroup.GET("/:id", ctrl.FindRequest)
		requestGroup.PUT("/:id", ctrl.UpdateRequest)
		requestGroup.DELETE("/:id", ctrl.DeleteRequest)
	}
}
