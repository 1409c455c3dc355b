package repositories

import (
	"errors"
	"fmt"
	"time"

	"fleet-backend/db/models"
	"fleet-backend/ingest"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FuelRepository interface {
	ListFuelRecords(vehicleID string, from, to *time.Time) ([]models.FuelRecord, error)
	GetFuelRecordByID(id string) (*models.FuelRecord, error)
	CreateFuelRecord(record *models.FuelRecord) (*models.FuelRecord, error)
	UpdateFuelRecord(record *models.FuelRecord) (*models.FuelRecord, error)
	DeleteFuelRecord(id string) error

	ListVehicleRefs() ([]ingest.VehicleRef, error)
	BulkCreateFuelRecords(records []models.FuelRecord) (int64, error)
	UpdateVehicleMileage(vehicleID uuid.UUID, mileage float64) error
	LogBulkUploadErrors(rows []models.BulkUploadError) error
}

type fuelRepository struct {
	db *gorm.DB
}

func NewFuelRepository(db *gorm.DB) FuelRepository {
	return &fuelRepository{db: db}
}

// ListFuelRecords returns refueling slips, optionally filtered to one vehicle
// and a date window.
func (r *fuelRepository) ListFuelRecords(vehicleID string, from, to *time.Time) ([]models.FuelRecord, error) {
	query := r.db.Preload("Vehicle").Order("date DESC")
	if vehicleID != "" {
		query = query.Where("vehicle_id = ?", vehicleID)
	}
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	var records []models.FuelRecord
	err := query.Find(&records).Error
	return records, err
}

func (r *fuelRepository) GetFuelRecordByID(id string) (*models.FuelRecord, error) {
	var record models.FuelRecord
	err := r.db.Preload("Vehicle").First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("fuel record with id '%s' not found", id)
		}
		return nil, err
	}
	return &record, nil
}

func (r *fuelRepository) CreateFuelRecord(record *models.FuelRecord) (*models.FuelRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	err := r.db.Create(record).Error
	return record, err
}

func (r *fuelRepository) UpdateFuelRecord(record *models.FuelRecord) (*models.FuelRecord, error) {
	err := r.db.Save(record).Error
	return record, err
}

func (r *fuelRepository) DeleteFuelRecord(id string) error {
	result := r.db.Delete(&models.FuelRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("fuel record with id '%s' not found", id)
	}
	return nil
}

func (r *fuelRepository) ListVehicleRefs() ([]ingest.VehicleRef, error) {
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

// BulkCreateFuelRecords inserts a batch in one statement. Fuel slips carry no
// unique business key, so no conflict handling is needed here.
func (r *fuelRepository) BulkCreateFuelRecords(records []models.FuelRecord) (int64, error) {
	result := r.db.Create(&records)
	return result.RowsAffected, result.Error
}

func (r *fuelRepository) UpdateVehicleMileage(vehicleID uuid.UUID, mileage float64) error {
	return r.db.Model(&models.Vehicle{}).
		Where("id = ?", vehicleID).
		Update("mileage", mileage).Error
}

func (r *fuelRepository) LogBulkUploadErrors(rows []models.BulkUploadError) error {
	return r.db.Create(&rows).Error
}
