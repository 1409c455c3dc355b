package controllers

import (
	"fleet-backend/inspections/repositories"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

type InspectionController struct {
	InspectionRepo repositories.InspectionRepository
	DB             *gorm.DB
	AsynqClient    *asynq.Client
}
