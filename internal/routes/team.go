package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
)

func runTeamRouter(secure *echo.Group, teamService *services.TeamService, logger *zap.Logger) {
	ctrl := controllers.NewTeamController(teamService, logger)

	teamGroup := secure.Group("/teams")
	{
		teamGroup.GET("", ctrl.GetTeams)
		teamGroup.POST("", ctrl.CreateTeam)
		teamGroup.GET("/:id", ctrl.FindTeam)
		teamGroup.PUT("/:id", ctrl.UpdateTeam)
		teamGroup.DELETE("/:id", ctrl.DeleteTeam)
	}
}
