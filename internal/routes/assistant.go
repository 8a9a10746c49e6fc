package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
)

func runAssistantRouter(secure *echo.Group, assistantService *services.AssistantService, logger *zap.Logger) {
	ctrl := controllers.NewAssistantController(assistantService, logger)

	secure.POST("/ai/suggest-assignment", ctrl.SuggestAssignment)
}
