package routes

import (
	"fleet-backend/maintenance/controllers"
	"fleet-backend/maintenance/repositories"
	"fleet-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func MaintenanceRouterInit(
	app *fiber.App,
	db *gorm.DB,
	appCtx *middleware.AppContext,
	maintenanceRepository repositories.MaintenanceRepository,
	asynqClient *asynq.Client,
) {
	maintenanceController := &controllers.MaintenanceController{
		MaintenanceRepo: maintenanceRepository,
		DB:              db,
		AsynqClient:     asynqClient,
	}

	maintenanceRoutes := app.Group("/api/maintenance", middleware.ProtectedRoute(appCtx))
	maintenanceRoutes.Get("/", maintenanceController.GetAllMaintenanceController)
	maintenanceRoutes.Get("/template", maintenanceController.DownloadMaintenanceTemplate)
	maintenanceRoutes.Get("/:id", maintenanceController.GetSingleMaintenanceController)
	maintenanceRoutes.Post("/", maintenanceController.CreateMaintenanceController)
	maintenanceRoutes.Put("/:id", maintenanceController.UpdateMaintenanceController)
	maintenanceRoutes.Delete("/:id", maintenanceController.DeleteMaintenanceController)
	maintenanceRoutes.Post("/bulk-upload", middleware.BulkUploadLimiter(rate.Limit(1), 3), maintenanceController.BulkUploadMaintenance)
}
