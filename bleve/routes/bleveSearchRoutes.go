package routes

import (
	"fleet-backend/bleve/controllers"

	"github.com/gofiber/fiber/v2"
)

func InitBleveRoutes(app *fiber.App, controller *controllers.SearchController) {
	api := app.Group("/api/search")

	api.Get("/vehicles", controller.SearchVehiclesController)
}
