package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/ai"
	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/middleware"
	"gearguard/pkg/monitoring"
	"gearguard/pkg/service"
	"gearguard/pkg/websocket"
)

// Deps carries everything InitRouter needs that main already constructed.
type Deps struct {
	Store     *repositories.Store
	Cache     repositories.CacheRepositoryInterface
	JWT       service.JWTService
	Assistant *ai.Assistant
	Hub       *websocket.Hub
	Metrics   *monitoring.Metrics
	Logger    *zap.Logger
	Config    *config.Config
}

func InitRouter(e *echo.Echo, deps Deps) {
	logger := deps.Logger
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(deps.JWT, logger)

	boardService := services.NewBoardService(deps.Store, deps.Cache, deps.Assistant,
		deps.Hub, deps.Metrics, logger, deps.Config.AI.PermissionCacheTTL)
	authService := services.NewAuthService(deps.Store.Users, deps.JWT, logger)
	requestService := services.NewRequestService(deps.Store, boardService, logger)
	equipmentService := services.NewEquipmentService(deps.Store.Equipment, logger)
	teamService := services.NewTeamService(deps.Store.Teams, logger)
	userService := services.NewUserService(deps.Store.Users, logger)
	workCenterService := services.NewWorkCenterService(deps.Store.WorkCenters, logger)
	dashboardService := services.NewDashboardService(deps.Store, logger)
	reportService := services.NewReportService(deps.Store, logger)
	assistantService := services.NewAssistantService(deps.Store, deps.Assistant, logger)

	secure := api.Group("", authMW.Auth)

	runAuthRouter(api, authService, userService, authMW, logger)
	runBoardRouter(secure, boardService, logger)
	runRequestRouter(secure, requestService, logger)
	runEquipmentRouter(secure, equipmentService, logger)
	runTeamRouter(secure, teamService, logger)
	runUserRouter(secure, userService, logger)
	runWorkCenterRouter(secure, workCenterService, logger)
	runDashboardRouter(secure, dashboardService, logger)
	runReportRouter(secure, reportService, logger)
	runAssistantRouter(secure, assistantService, logger)

	wsCtrl := controllers.NewWebSocketController(deps.Hub, deps.JWT, logger)
	e.GET("/ws", wsCtrl.Serve)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", deps.Metrics.Handler())
}
