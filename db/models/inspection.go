package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InspectionStatus string

const (
	InspectionPending   InspectionStatus = "Pending"
	InspectionPassed    InspectionStatus = "Passed"
	InspectionFailed    InspectionStatus = "Failed"
	InspectionScheduled InspectionStatus = "Scheduled"
)

// ChecklistItem is one scored category of an inspection.
type ChecklistItem struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"` // 0-100
}

type Inspection struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	VehicleID uuid.UUID `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	Vehicle   *Vehicle  `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`

	Date       time.Time        `gorm:"not null" json:"date"`
	Status     InspectionStatus `gorm:"default:'Pending'" json:"status"`
	Technician string           `gorm:"not null" json:"technician"`
	Notes      string           `json:"notes"`
	Type       string           `gorm:"default:'Preventive Maintenance'" json:"type"`

	OverallRating *float64       `json:"overallRating"` // 0-10
	Checklist     datatypes.JSON `gorm:"type:jsonb" json:"checklist,omitempty"`
	Location      string         `json:"location"`

	// Odometer reading taken during the inspection; propagated to the vehicle.
	CurrentMeterReading *float64 `json:"currentMeterReading"`

	AddedVia  string         `gorm:"default:'single'" json:"added_via"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
