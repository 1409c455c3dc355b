package repositories

import (
	"errors"
	"fmt"

	"fleet-backend/db/models"
	"fleet-backend/ingest"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintenanceRepository interface {
	ListMaintenance(vehicleID string, status string) ([]models.Maintenance, error)
	GetMaintenanceByID(id string) (*models.Maintenance, error)
	CreateMaintenance(job *models.Maintenance) (*models.Maintenance, error)
	UpdateMaintenance(job *models.Maintenance) (*models.Maintenance, error)
	DeleteMaintenance(id string) error

	ListVehicleRefs() ([]ingest.VehicleRef, error)
	BulkCreateMaintenance(jobs []models.Maintenance) (int64, error)
	ApplyServiceMilestone(vehicleID uuid.UUID, tireJob bool) error
	LogBulkUploadErrors(rows []models.BulkUploadError) error
}

type maintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) ListMaintenance(vehicleID string, status string) ([]models.Maintenance, error) {
	query := r.db.Preload("Vehicle").Order("date_in DESC")
	if vehicleID != "" {
		query = query.Where("vehicle_id = ?", vehicleID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var jobs []models.Maintenance
	err := query.Find(&jobs).Error
	return jobs, err
}

func (r *maintenanceRepository) GetMaintenanceByID(id string) (*models.Maintenance, error) {
	var job models.Maintenance
	err := r.db.Preload("Vehicle").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("maintenance record with id '%s' not found", id)
		}
		return nil, err
	}
	return &job, nil
}

func (r *maintenanceRepository) CreateMaintenance(job *models.Maintenance) (*models.Maintenance, error) {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	err := r.db.Create(job).Error
	return job, err
}

func (r *maintenanceRepository) UpdateMaintenance(job *models.Maintenance) (*models.Maintenance, error) {
	err := r.db.Save(job).Error
	return job, err
}

func (r *maintenanceRepository) DeleteMaintenance(id string) error {
	result := r.db.Delete(&models.Maintenance{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("maintenance record with id '%s' not found", id)
	}
	return nil
}

func (r *maintenanceRepository) ListVehicleRefs() ([]ingest.VehicleRef, error) {
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

func (r *maintenanceRepository) BulkCreateMaintenance(jobs []models.Maintenance) (int64, error) {
	result := r.db.Create(&jobs)
	return result.RowsAffected, result.Error
}

// ApplyServiceMilestone stamps the vehicle's current odometer reading onto
// the matching milestone column. The read and write happen in one statement
// so the reading cannot go stale between them.
func (r *maintenanceRepository) ApplyServiceMilestone(vehicleID uuid.UUID, tireJob bool) error {
	column := "last_service"
	if tireJob {
		column = "last_tire_change_activity"
	}
	return r.db.Model(&models.Vehicle{}).
		Where("id = ?", vehicleID).
		Update(column, gorm.Expr("mileage")).Error
}

func (r *maintenanceRepository) LogBulkUploadErrors(rows []models.BulkUploadError) error {
	return r.db.Create(&rows).Error
}
