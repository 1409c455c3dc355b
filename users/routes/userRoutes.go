package routes

import (
	"fleet-backend/middleware"
	"fleet-backend/users/controllers"
	"fleet-backend/users/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserRouterInit(
	app *fiber.App,
	db *gorm.DB,
	appCtx *middleware.AppContext,
	userRepository repositories.UserRepository,
) {
	userController := &controllers.UserController{
		UserRepo:    userRepository,
		PasetoMaker: appCtx.PasetoMaker,
		Ctx:         appCtx.Ctx,
		RedisClient: appCtx.RedisClient,
	}

	authRoutes := app.Group("/api/auth")
	authRoutes.Post("/register", userController.RegisterUserController)
	authRoutes.Post("/login", userController.LoginUserController)
	authRoutes.Post("/logout", userController.LogoutUserController)
	authRoutes.Get("/me", middleware.ProtectedRoute(appCtx), userController.GetCurrentUserController)
}
