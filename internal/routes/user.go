package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
)

func runUserRouter(secure *echo.Group, userService *services.UserService, logger *zap.Logger) {
	ctrl := controllers.NewUserController(userService, logger)

	userGroup := secure.Group("/users")
	{
		userGroup.GET("", ctrl.GetUsers)
		userGroup.GET("/:id", ctrl.FindUser)
	}
}
