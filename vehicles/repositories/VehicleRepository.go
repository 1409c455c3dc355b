package repositories

import (
	"errors"
	"fmt"

	"fleet-backend/db/models"
	"fleet-backend/ingest"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VehicleRepository interface {
	ListVehicles() ([]models.Vehicle, error)
	GetVehicleByID(id string) (*models.Vehicle, error)
	CreateVehicle(vehicle *models.Vehicle) (*models.Vehicle, error)
	UpdateVehicle(vehicle *models.Vehicle) (*models.Vehicle, error)
	DeleteVehicle(id string) error

	ListVehicleRefs() ([]ingest.VehicleRef, error)
	FindExistingCallsigns(callsigns []string) ([]string, error)
	BulkCreateVehicles(vehicles []models.Vehicle) (int64, error)
	LogBulkUploadErrors(rows []models.BulkUploadError) error
	GetVehiclesByIDs(ids []uuid.UUID) ([]models.Vehicle, error)
}

type vehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) ListVehicles() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.db.Order("callsign ASC").Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepository) GetVehicleByID(id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.First(&vehicle, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle with id '%s' not found", id)
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) CreateVehicle(vehicle *models.Vehicle) (*models.Vehicle, error) {
	if vehicle.ID == uuid.Nil {
		vehicle.ID = uuid.New()
	}
	err := r.db.Create(vehicle).Error
	return vehicle, err
}

func (r *vehicleRepository) UpdateVehicle(vehicle *models.Vehicle) (*models.Vehicle, error) {
	err := r.db.Save(vehicle).Error
	return vehicle, err
}

// DeleteVehicle removes a vehicle and every record hanging off it.
func (r *vehicleRepository) DeleteVehicle(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vehicle_id = ?", id).Delete(&models.Inspection{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vehicle_id = ?", id).Delete(&models.FuelRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vehicle_id = ?", id).Delete(&models.Maintenance{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Vehicle{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("vehicle with id '%s' not found", id)
		}
		return nil
	})
}

// ListVehicleRefs loads the whole fleet once for callsign resolution. One
// query per upload, never per row.
func (r *vehicleRepository) ListVehicleRefs() ([]ingest.VehicleRef, error) {
	var vehicles []models.Vehicle
	if err := r.db.Select("id", "callsign", "mileage").Order("created_at ASC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	refs := make([]ingest.VehicleRef, 0, len(vehicles))
	for _, v := range vehicles {
		refs = append(refs, ingest.VehicleRef{ID: v.ID, Callsign: v.Callsign, Mileage: v.Mileage})
	}
	return refs, nil
}

func (r *vehicleRepository) FindExistingCallsigns(callsigns []string) ([]string, error) {
	var existing []string
	err := r.db.Model(&models.Vehicle{}).
		Where("UPPER(callsign) IN ?", callsigns).
		Pluck("callsign", &existing).Error
	return existing, err
}

// BulkCreateVehicles inserts a batch with partial-success semantics: a row
// colliding with the callsign unique index is dropped without aborting its
// siblings. Returns the number of rows actually inserted.
func (r *vehicleRepository) BulkCreateVehicles(vehicles []models.Vehicle) (int64, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "callsign"}},
		DoNothing: true,
	}).Create(&vehicles)
	return result.RowsAffected, result.Error
}

func (r *vehicleRepository) LogBulkUploadErrors(rows []models.BulkUploadError) error {
	return r.db.Create(&rows).Error
}

func (r *vehicleRepository) GetVehiclesByIDs(ids []uuid.UUID) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.db.Where("id IN ?", ids).Find(&vehicles).Error
	return vehicles, err
}
