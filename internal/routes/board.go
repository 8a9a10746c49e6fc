package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
)

func runBoardRouter(secure *echo.Group, boardService *services.BoardService, logger *zap.Logger) {
	ctrl := controllers.NewBoardController(boardService, logger)

	boardGroup := secure.Group("/board")
	{
		boardGroup.GET("", ctrl.GetBoard)
		boardGroup.POST("/move", ctrl.MoveCard)
	}
}
