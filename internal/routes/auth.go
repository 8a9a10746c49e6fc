package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
	"gearguard/pkg/middleware"
)

func runAuthRouter(api *echo.Group, authService *services.AuthService, userService *services.UserService, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	authCtrl := controllers.NewAuthController(authService, logger)
	userCtrl := controllers.NewUserController(userService, logger)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/refresh_token", authCtrl.Refresh)
		authGroup.GET("/me", userCtrl.Me, authMW.Auth)
	}
}
