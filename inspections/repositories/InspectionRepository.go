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

type InspectionRepository interface {
	ListInspections(vehicleID string, status string) ([]models.Inspection, error)
	GetInspectionByID(id string) (*models.Inspection, error)
	CreateInspection(inspection *models.Inspection) (*models.Inspection, error)
	UpdateInspection(inspection *models.Inspection) (*models.Inspection, error)
	DeleteInspection(id string) error
	ListUpcomingInspections(from time.Time) ([]models.Inspection, error)

	ListVehicleRefs() ([]ingest.VehicleRef, error)
	BulkCreateInspections(inspections []models.Inspection) (int64, error)
	UpdateVehicleMileage(vehicleID uuid.UUID, mileage float64) error
	LogBulkUploadErrors(rows []models.BulkUploadError) error
}

type inspectionRepository struct {
	db *gorm.DB
}

func NewInspectionRepository(db *gorm.DB) InspectionRepository {
	return &inspectionRepository{db: db}
}

func (r *inspectionRepository) ListInspections(vehicleID string, status string) ([]models.Inspection, error) {
	query := r.db.Preload("Vehicle").Order("date DESC")
	if vehicleID != "" {
		query = query.Where("vehicle_id = ?", vehicleID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var inspections []models.Inspection
	err := query.Find(&inspections).Error
	return inspections, err
}

func (r *inspectionRepository) GetInspectionByID(id string) (*models.Inspection, error) {
	var inspection models.Inspection
	err := r.db.Preload("Vehicle").First(&inspection, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("inspection with id '%s' not found", id)
		}
		return nil, err
	}
	return &inspection, nil
}

func (r *inspectionRepository) CreateInspection(inspection *models.Inspection) (*models.Inspection, error) {
	if inspection.ID == uuid.Nil {
		inspection.ID = uuid.New()
	}
	err := r.db.Create(inspection).Error
	return inspection, err
}

func (r *inspectionRepository) UpdateInspection(inspection *models.Inspection) (*models.Inspection, error) {
	err := r.db.Save(inspection).Error
	return inspection, err
}

func (r *inspectionRepository) DeleteInspection(id string) error {
	result := r.db.Delete(&models.Inspection{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("inspection with id '%s' not found", id)
	}
	return nil
}

// ListUpcomingInspections returns scheduled inspections from the given date
// onward, soonest first.
func (r *inspectionRepository) ListUpcomingInspections(from time.Time) ([]models.Inspection, error) {
	var inspections []models.Inspection
	err := r.db.Preload("Vehicle").
		Where("status = ? AND date >= ?", models.InspectionScheduled, from).
		Order("date ASC").
		Find(&inspections).Error
	return inspections, err
}

func (r *inspectionRepository) ListVehicleRefs() ([]ingest.VehicleRef, error) {
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

func (r *inspectionRepository) BulkCreateInspections(inspections []models.Inspection) (int64, error) {
	result := r.db.Create(&inspections)
	return result.RowsAffected, result.Error
}

func (r *inspectionRepository) UpdateVehicleMileage(vehicleID uuid.UUID, mileage float64) error {
	return r.db.Model(&models.Vehicle{}).
		Where("id = ?", vehicleID).
		Update("mileage", mileage).Error
}

func (r *inspectionRepository) LogBulkUploadErrors(rows []models.BulkUploadError) error {
	return r.db.Create(&rows).Error
}
