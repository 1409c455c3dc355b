package routes

import (
	"fleet-backend/inspections/controllers"
	"fleet-backend/inspections/repositories"
	"fleet-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func InspectionRouterInit(
	app *fiber.App,
	db *gorm.DB,
	appCtx *middleware.AppContext,
	inspectionRepository repositories.InspectionRepository,
	asynqClient *asynq.Client,
) {
	inspectionController := &controllers.InspectionController{
		InspectionRepo: inspectionRepository,
		DB:             db,
		AsynqClient:    asynqClient,
	}

	inspectionRoutes := app.Group("/api/inspections", middleware.ProtectedRoute(appCtx))
	inspectionRoutes.Get("/", inspectionController.GetAllInspectionsController)
	inspectionRoutes.Get("/template", inspectionController.DownloadInspectionTemplate)
	inspectionRoutes.Get("/schedule", inspectionController.GetInspectionScheduleController)
	inspectionRoutes.Get("/:id", inspectionController.GetSingleInspectionController)
	inspectionRoutes.Post("/", inspectionController.CreateInspectionController)
	inspectionRoutes.Put("/:id", inspectionController.UpdateInspectionController)
	inspectionRoutes.Delete("/:id", inspectionController.DeleteInspectionController)
	inspectionRoutes.Post("/bulk-upload", middleware.BulkUploadLimiter(rate.Limit(1), 3), inspectionController.BulkUploadInspections)
}
