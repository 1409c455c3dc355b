package repositories

import (
	"context"

	bleveindex "fleet-backend/bleve/services"
	"fleet-backend/db/models"
)

type BleveRepository struct {
	indexer *bleveindex.IndexingService
}

type BleveRepositoryInterface interface {
	DeleteAllIndices(ctx context.Context) error

	// ==== Vehicle Indexing ====
	IndexSingleVehicle(vehicle models.Vehicle) error
	IndexExistingVehicles(vehicles []models.Vehicle) error
	UpdateVehicle(vehicle models.Vehicle) error
	DeleteVehicle(vehicleID string) error
}

// Constructor returning both the struct and the interface
func NewBleveRepository(indexer *bleveindex.IndexingService) (*BleveRepository, BleveRepositoryInterface) {
	repo := &BleveRepository{indexer: indexer}
	return repo, repo
}

func (r *BleveRepository) DeleteAllIndices(ctx context.Context) error {
	return r.indexer.DeleteAllIndices()
}
