package repositories

import (
	"errors"
	"fmt"

	"fleet-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccidentRepository interface {
	ListAccidents(vehicleID string) ([]models.Accident, error)
	GetAccidentByID(id string) (*models.Accident, error)
	CreateAccident(accident *models.Accident) (*models.Accident, error)
	UpdateAccident(accident *models.Accident) (*models.Accident, error)
	DeleteAccident(id string) error
}

type accidentRepository struct {
	db *gorm.DB
}

func NewAccidentRepository(db *gorm.DB) AccidentRepository {
	return &accidentRepository{db: db}
}

func (r *accidentRepository) ListAccidents(vehicleID string) ([]models.Accident, error) {
	query := r.db.Preload("Vehicle").Order("accident_date DESC")
	if vehicleID != "" {
		query = query.Where("vehicle_id = ?", vehicleID)
	}

	var accidents []models.Accident
	err := query.Find(&accidents).Error
	return accidents, err
}

func (r *accidentRepository) GetAccidentByID(id string) (*models.Accident, error) {
	var accident models.Accident
	err := r.db.Preload("Vehicle").First(&accident, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("accident with id '%s' not found", id)
		}
		return nil, err
	}
	return &accident, nil
}

func (r *accidentRepository) CreateAccident(accident *models.Accident) (*models.Accident, error) {
	if accident.ID == uuid.Nil {
		accident.ID = uuid.New()
	}
	err := r.db.Create(accident).Error
	return accident, err
}

func (r *accidentRepository) UpdateAccident(accident *models.Accident) (*models.Accident, error) {
	err := r.db.Save(accident).Error
	return accident, err
}

func (r *accidentRepository) DeleteAccident(id string) error {
	result := r.db.Delete(&models.Accident{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("accident with id '%s' not found", id)
	}
	return nil
}
