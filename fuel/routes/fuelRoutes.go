package routes

import (
	"fleet-backend/fuel/controllers"
	"fleet-backend/fuel/repositories"
	"fleet-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func FuelRouterInit(
	app *fiber.App,
	db *gorm.DB,
	appCtx *middleware.AppContext,
	fuelRepository repositories.FuelRepository,
	asynqClient *asynq.Client,
) {
	fuelController := &controllers.FuelController{
		FuelRepo:    fuelRepository,
		DB:          db,
		AsynqClient: asynqClient,
	}

	fuelRoutes := app.Group("/api/fuel", middleware.ProtectedRoute(appCtx))
	fuelRoutes.Get("/", fuelController.GetAllFuelRecordsController)
	fuelRoutes.Get("/template", fuelController.DownloadFuelTemplate)
	fuelRoutes.Get("/:id", fuelController.GetSingleFuelRecordController)
	fuelRoutes.Post("/", fuelController.CreateFuelRecordController)
	fuelRoutes.Put("/:id", fuelController.UpdateFuelRecordController)
	fuelRoutes.Delete("/:id", fuelController.DeleteFuelRecordController)
	fuelRoutes.Post("/bulk-upload", middleware.BulkUploadLimiter(rate.Limit(1), 3), fuelController.BulkUploadFuel)
}
