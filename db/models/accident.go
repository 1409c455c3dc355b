package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Accident struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	VehicleID uuid.UUID `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	Vehicle   *Vehicle  `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`

	AccidentDate    time.Time `gorm:"not null" json:"accidentDate"`
	AccidentTime    string    `json:"accidentTime"` // HH:MM
	Location        string    `json:"location"`
	Details         string    `json:"details"`
	DriverName      string    `json:"driverName"`
	DriverEmpID     string    `json:"driverEmpId"`
	DuringEmergency bool      `gorm:"default:false" json:"duringEmergency"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
