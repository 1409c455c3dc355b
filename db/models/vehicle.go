package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VehicleStatus string

const (
	OnRoadStatus         VehicleStatus = "OnRoad Fleet"
	OffRoadStatus        VehicleStatus = "OffRoad Fleet"
	MechanicalStatus     VehicleStatus = "Mechanical Maintenance"
	InsuranceClaimStatus VehicleStatus = "Insurance Claim"
)

// DamagePoint is one marked defect on the vehicle body diagram.
type DamagePoint struct {
	Type      string `json:"type"` // D, S, B or OK
	Location  string `json:"location"`
	Notes     string `json:"notes,omitempty"`
	ImagePath string `json:"imagePath"`
}

// Vehicle is a fleet unit. The callsign is the natural key used when
// reconciling spreadsheet rows against the fleet; the unique index is the
// storage-layer backstop for concurrent bulk uploads.
type Vehicle struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Callsign string    `gorm:"uniqueIndex;not null" json:"callsign"`
	Model    string    `gorm:"not null" json:"model"`
	Year     int       `gorm:"not null" json:"year"`
	Mileage  float64   `gorm:"default:0" json:"mileage"`

	Status VehicleStatus `gorm:"default:'OnRoad Fleet'" json:"status"`

	// Service milestones, stored as odometer readings.
	NextService            *float64 `json:"nextService"`
	LastService            float64  `gorm:"default:0" json:"lastService"`
	LastTireChangeActivity float64  `gorm:"default:0" json:"lastTireChangeActivity"`

	ChassisNo      string `json:"chassisNo"`
	EngineNo       string `json:"engineNo"`
	RegistrationNo string `json:"registrationNo"`
	FuelType       string `gorm:"default:'Petrol'" json:"fuelType"`
	Transmission   string `gorm:"default:'Manual'" json:"transmission"`
	EngineCapacity string `json:"engineCapacity"`
	RegisteredCity string `json:"registeredCity"`
	OwnerName      string `json:"ownerName"`

	MainImage    *string        `json:"mainImage,omitempty"`
	DamagePoints datatypes.JSON `gorm:"type:jsonb" json:"damagePoints,omitempty"`

	AddedVia  string         `gorm:"default:'single'" json:"added_via"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
