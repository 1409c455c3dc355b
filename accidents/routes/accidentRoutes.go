package routes

import (
	"fleet-backend/accidents/controllers"
	"fleet-backend/accidents/repositories"
	"fleet-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AccidentRouterInit(
	app *fiber.App,
	db *gorm.DB,
	appCtx *middleware.AppContext,
	accidentRepository repositories.AccidentRepository,
) {
	accidentController := &controllers.AccidentController{
		AccidentRepo: accidentRepository,
		DB:           db,
	}

	accidentRoutes := app.Group("/api/accidents", middleware.ProtectedRoute(appCtx))
	accidentRoutes.Get("/", accidentController.GetAllAccidentsController)
	accidentRoutes.Get("/:id", accidentController.GetSingleAccidentController)
	accidentRoutes.Post("/", accidentController.CreateAccidentController)
	accidentRoutes.Put("/:id", accidentController.UpdateAccidentController)
	accidentRoutes.Delete("/:id", accidentController.DeleteAccidentController)
}
