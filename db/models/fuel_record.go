package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FuelRecord is one refueling slip. Bulk-uploaded records are
// indistinguishable from ones created through the single-record endpoint.
type FuelRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	VehicleID uuid.UUID `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	Vehicle   *Vehicle  `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`

	Date time.Time `gorm:"not null" json:"date"`

	AmbNo  string `json:"amb_no"`
	SlipNo string `json:"slip_no"`

	// Odometer reading at refueling; the latest per vehicle is propagated to
	// Vehicle.Mileage after a commit.
	CurrentRefuelingKM     float64 `json:"current_refueling_km"`
	TotalKM                float64 `json:"total_km"`
	TrackerVerifiedKM      float64 `json:"tracker_verified_km"`
	CurrentRefuelingLiters float64 `json:"current_refueling_liters"`

	Rate     decimal.Decimal `gorm:"type:decimal(12,2)" json:"rate"`
	AmountRs decimal.Decimal `gorm:"type:decimal(14,2)" json:"amount_rs"`

	RefuelingTime string `json:"refueling_time"` // HH:MM
	EvoEmpCode    string `json:"evo_emp_code"`
	EvoName       string `json:"evo_name"`
	ScName        string `json:"sc_name"`
	ScName2       string `json:"sc_name2"`

	AddedVia  string         `gorm:"default:'single'" json:"added_via"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
