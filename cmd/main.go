package main

import (
	"context"

	"fleet-backend/config"
	fleetdb "fleet-backend/db"
	"fleet-backend/middleware"
	"fleet-backend/tasks"
	"fleet-backend/token"
	"fleet-backend/utils"

	// Repositories
	accidents_repositories "fleet-backend/accidents/repositories"
	fuel_repositories "fleet-backend/fuel/repositories"
	inspections_repositories "fleet-backend/inspections/repositories"
	maintenance_repositories "fleet-backend/maintenance/repositories"
	reports_repositories "fleet-backend/reports/repositories"
	users_repositories "fleet-backend/users/repositories"
	vehicles_repositories "fleet-backend/vehicles/repositories"

	// Routes
	accident_routes "fleet-backend/accidents/routes"
	fuel_routes "fleet-backend/fuel/routes"
	inspection_routes "fleet-backend/inspections/routes"
	maintenance_routes "fleet-backend/maintenance/routes"
	report_routes "fleet-backend/reports/routes"
	user_routes "fleet-backend/users/routes"
	vehicle_routes "fleet-backend/vehicles/routes"

	// Search
	bleveControllers "fleet-backend/bleve/controllers"
	bleveRepositories "fleet-backend/bleve/repositories"
	bleveRoutes "fleet-backend/bleve/routes"
	bleveServices "fleet-backend/bleve/services"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	config.InitLogger()

	if err := godotenv.Load(".env"); err != nil {
		config.Logger.Warn("No .env file found, relying on process environment", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // bulk upload workbooks
	})
	middleware.InitCors(app)

	db := config.ConfigureDatabase()
	if err := fleetdb.SeedDefaultAdmin(db, config.GetEnvOr("ADMIN_EMAIL", ""), config.GetEnvOr("ADMIN_PASSWORD", "")); err != nil {
		config.Logger.Fatal("Failed to seed default admin", zap.Error(err))
	}
	port := config.GetEnvOr("PORT", "8080")
	ctx := context.Background()

	redisAddr := config.GetEnvOr("REDIS_ADDRESS", "localhost:6379")
	redisClient := config.InitRedisServer(ctx)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	defer asynqClient.Close()

	tokenMaker, err := token.NewPasetoMaker(config.GetEnv("TOKEN_SYMMETRIC_KEY"))
	if err != nil {
		config.Logger.Fatal("Cannot create token maker", zap.Error(err))
	}

	indexPath := config.GetEnvOr("BLEVE_INDEX_PATH", "./bleve_data")

	utils.InitializeMailer()
	if utils.GetMailer() == nil {
		config.Logger.Fatal("Mailer not initialized")
	}

	if err := utils.InitializeDateLocation(); err != nil {
		config.Logger.Fatal("Failed to initialize date location", zap.Error(err))
	}

	// Generated reports and uploaded files
	app.Static("/public", "./public")
	app.Static("/uploads", "./uploads")

	// Repositories
	bleveIndexingService := bleveServices.NewIndexingService(config.Logger, indexPath)
	bleveServiceRepo, bleveInterfaceRepo := bleveRepositories.NewBleveRepository(bleveIndexingService)
	vehicleRepo := vehicles_repositories.NewVehicleRepository(db)
	fuelRepo := fuel_repositories.NewFuelRepository(db)
	inspectionRepo := inspections_repositories.NewInspectionRepository(db)
	maintenanceRepo := maintenance_repositories.NewMaintenanceRepository(db)
	accidentRepo := accidents_repositories.NewAccidentRepository(db)
	reportRepo := reports_repositories.NewReportRepository(db)
	userRepo := users_repositories.NewUserRepository(db)

	appCtx := &middleware.AppContext{
		PasetoMaker: tokenMaker,
		Ctx:         ctx,
		RedisClient: redisClient,
	}

	// Routes
	user_routes.UserRouterInit(app, db, appCtx, userRepo)
	vehicle_routes.VehicleRouterInit(app, db, appCtx, vehicleRepo, bleveInterfaceRepo, asynqClient)
	fuel_routes.FuelRouterInit(app, db, appCtx, fuelRepo, asynqClient)
	inspection_routes.InspectionRouterInit(app, db, appCtx, inspectionRepo, asynqClient)
	maintenance_routes.MaintenanceRouterInit(app, db, appCtx, maintenanceRepo, asynqClient)
	accident_routes.AccidentRouterInit(app, db, appCtx, accidentRepo)
	report_routes.ReportRouterInit(app, db, appCtx, reportRepo)

	bleveController := bleveControllers.NewSearchController(bleveServiceRepo)
	bleveRoutes.InitBleveRoutes(app, bleveController)

	// Background jobs: error report emails and search reindexing.
	worker := tasks.RunWorker(redisAddr, db, bleveInterfaceRepo)
	defer worker.Shutdown()

	// Daily purge of generated report files.
	cleanup := utils.RunScheduledCleanup()
	defer cleanup.Stop()

	config.Logger.Info("Server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}
