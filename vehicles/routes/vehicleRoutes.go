package routes

import (
	indexing_repository "fleet-backend/bleve/repositories"
	"fleet-backend/middleware"
	"fleet-backend/vehicles/controllers"
	"fleet-backend/vehicles/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func VehicleRouterInit(
	app *fiber.App,
	db *gorm.DB,
	appCtx *middleware.AppContext,
	vehicleRepository repositories.VehicleRepository,
	bleveRepo indexing_repository.BleveRepositoryInterface,
	asynqClient *asynq.Client,
) {
	vehicleController := &controllers.VehicleController{
		VehicleRepo: vehicleRepository,
		DB:          db,
		BleveRepo:   bleveRepo,
		AsynqClient: asynqClient,
	}

	vehicleRoutes := app.Group("/api/vehicles", middleware.ProtectedRoute(appCtx))
	vehicleRoutes.Get("/", vehicleController.GetAllVehiclesController)
	vehicleRoutes.Get("/template", vehicleController.DownloadVehicleTemplate)
	vehicleRoutes.Get("/:id", vehicleController.GetSingleVehicleController)
	vehicleRoutes.Post("/", vehicleController.CreateVehicleController)
	vehicleRoutes.Put("/:id", vehicleController.UpdateVehicleController)
	vehicleRoutes.Delete("/:id", vehicleController.DeleteVehicleController)
	vehicleRoutes.Post("/bulk-upload", middleware.BulkUploadLimiter(rate.Limit(1), 3), vehicleController.BulkUploadVehicles)
}
