package controllers

import (
	"fleet-backend/maintenance/repositories"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

type MaintenanceController struct {
	MaintenanceRepo repositories.MaintenanceRepository
	DB              *gorm.DB
	AsynqClient     *asynq.Client
}
