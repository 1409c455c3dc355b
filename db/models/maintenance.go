package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MaintenanceCategory string

const (
	PreventiveCategory MaintenanceCategory = "Preventive"
	CorrectiveCategory MaintenanceCategory = "Corrective"
)

type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "Scheduled"
	MaintenanceInProgress MaintenanceStatus = "In Progress"
	MaintenanceCompleted  MaintenanceStatus = "Completed"
)

// Maintenance is one repair or service job. Jobs committed as Completed
// propagate a service milestone onto the vehicle.
type Maintenance struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	VehicleID uuid.UUID `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	Vehicle   *Vehicle  `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`

	Category MaintenanceCategory `gorm:"not null" json:"category"`
	Type     string              `gorm:"not null" json:"type"`
	DateIn   time.Time           `gorm:"not null" json:"dateIn"`

	ElectricalCost  decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"electricalCost"`
	FabricationCost decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"fabricationCost"`
	InsuranceCost   decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"insuranceCost"`
	OtherCost       decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"otherCost"`

	Status      MaintenanceStatus `gorm:"default:'Scheduled'" json:"status"`
	Description string            `json:"description"`
	Technician  string            `json:"technician"`
	PartsUsed   string            `json:"partsUsed"`

	AddedVia  string         `gorm:"default:'single'" json:"added_via"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
