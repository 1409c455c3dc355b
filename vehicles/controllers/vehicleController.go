package controllers

import (
	indexing_repository "fleet-backend/bleve/repositories"
	"fleet-backend/vehicles/repositories"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

type VehicleController struct {
	VehicleRepo repositories.VehicleRepository
	DB          *gorm.DB
	BleveRepo   indexing_repository.BleveRepositoryInterface
	AsynqClient *asynq.Client
}
