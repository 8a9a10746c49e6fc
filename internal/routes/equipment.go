package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
)

func runEquipmentRouter(secure *echo.Group, equipmentService *services.EquipmentService, logger *zap.Logger) {
	ctrl := controllers.NewEquipmentController(equipmentService, logger)

	equipmentGroup := secure.Group("/equipment")
	{
		equipmentGroup.GET("", ctrl.GetEquipment)
		equipmentGroup.POST("", ctrl.CreateEquipment)
		equipmentGroup.GET("/:id", ctrl.FindEquipment)
		equipmentGroup.PUT("/:id", ctrl.UpdateEquipment)
		equipmentGroup.DELETE("/:id", ctrl.DeleteEquipment)
	}
}
