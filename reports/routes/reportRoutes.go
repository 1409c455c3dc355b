package routes

import (
	"fleet-backend/middleware"
	"fleet-backend/reports/controllers"
	"fleet-backend/reports/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ReportRouterInit(
	app *fiber.App,
	db *gorm.DB,
	appCtx *middleware.AppContext,
	reportRepository repositories.ReportRepository,
) {
	reportController := &controllers.ReportController{
		ReportRepo: reportRepository,
		DB:         db,
	}

	reportRoutes := app.Group("/api/reports", middleware.ProtectedRoute(appCtx))
	reportRoutes.Post("/generate/:type", reportController.GenerateReportController)
}
