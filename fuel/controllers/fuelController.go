package controllers

import (
	"fleet-backend/fuel/repositories"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

type FuelController struct {
	FuelRepo    repositories.FuelRepository
	DB          *gorm.DB
	AsynqClient *asynq.Client
}
