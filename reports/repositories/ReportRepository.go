package repositories

import (
	"time"

	"fleet-backend/db/models"

	"gorm.io/gorm"
)

// FleetPerformanceRow is one vehicle's activity within the report window.
type FleetPerformanceRow struct {
	VehicleID      string  `json:"vehicle_id"`
	Callsign       string  `json:"callsign"`
	Name           string  `json:"name"`
	Status         string  `json:"status"`
	Mileage        float64 `json:"mileage"`
	RefuelingCount int64   `json:"refueling_count"`
	TotalKM        float64 `json:"total_km"`
	InspectionCount int64  `json:"inspection_count"`
}

// FuelEfficiencyRow is one vehicle's consumption within the report window.
type FuelEfficiencyRow struct {
	VehicleID   string  `json:"vehicle_id"`
	Callsign    string  `json:"callsign"`
	TotalLiters float64 `json:"total_liters"`
	TotalKM     float64 `json:"total_km"`
	TotalAmount float64 `json:"total_amount"`
	KMPerLiter  float64 `json:"km_per_liter"`
}

// MaintenanceCostRow is one vehicle's workshop spend within the report window.
type MaintenanceCostRow struct {
	VehicleID       string  `json:"vehicle_id"`
	Callsign        string  `json:"callsign"`
	JobCount        int64   `json:"job_count"`
	ElectricalCost  float64 `json:"electrical_cost"`
	FabricationCost float64 `json:"fabrication_cost"`
	InsuranceCost   float64 `json:"insurance_cost"`
	OtherCost       float64 `json:"other_cost"`
	TotalCost       float64 `json:"total_cost"`
}

// VehicleHealthRow is one vehicle's current condition snapshot.
type VehicleHealthRow struct {
	VehicleID              string   `json:"vehicle_id"`
	Callsign               string   `json:"callsign"`
	Status                 string   `json:"status"`
	Mileage                float64  `json:"mileage"`
	LastService            float64  `json:"last_service"`
	LastTireChangeActivity float64  `json:"last_tire_change_activity"`
	NextService            *float64 `json:"next_service"`
	LastInspectionRating   *float64 `json:"last_inspection_rating"`
	OpenMaintenanceJobs    int64    `json:"open_maintenance_jobs"`
}

type ReportRepository interface {
	FleetPerformance(from, to time.Time) ([]FleetPerformanceRow, error)
	FuelEfficiency(from, to time.Time) ([]FuelEfficiencyRow, error)
	MaintenanceCosts(from, to time.Time) ([]MaintenanceCostRow, error)
	VehicleHealth() ([]VehicleHealthRow, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) FleetPerformance(from, to time.Time) ([]FleetPerformanceRow, error) {
	var rows []FleetPerformanceRow
	err := r.db.Model(&models.Vehicle{}).
		Select(`vehicles.id AS vehicle_id, vehicles.callsign, vehicles.name, vehicles.status, vehicles.mileage,
			COUNT(DISTINCT fuel_records.id) AS refueling_count,
			COALESCE(SUM(fuel_records.total_km), 0) AS total_km,
			COUNT(DISTINCT inspections.id) AS inspection_count`).
		Joins(`LEFT JOIN fuel_records ON fuel_records.vehicle_id = vehicles.id
			AND fuel_records.date >= ? AND fuel_records.date < ? AND fuel_records.deleted_at IS NULL`, from, to).
		Joins(`LEFT JOIN inspections ON inspections.vehicle_id = vehicles.id
			AND inspections.date >= ? AND inspections.date < ? AND inspections.deleted_at IS NULL`, from, to).
		Group("vehicles.id, vehicles.callsign, vehicles.name, vehicles.status, vehicles.mileage").
		Order("vehicles.callsign ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) FuelEfficiency(from, to time.Time) ([]FuelEfficiencyRow, error) {
	var rows []FuelEfficiencyRow
	err := r.db.Model(&models.FuelRecord{}).
		Select(`fuel_records.vehicle_id AS vehicle_id, vehicles.callsign,
			COALESCE(SUM(fuel_records.current_refueling_liters), 0) AS total_liters,
			COALESCE(SUM(fuel_records.total_km), 0) AS total_km,
			COALESCE(SUM(fuel_records.amount_rs), 0) AS total_amount,
			CASE WHEN SUM(fuel_records.current_refueling_liters) > 0
				THEN SUM(fuel_records.total_km) / SUM(fuel_records.current_refueling_liters)
				ELSE 0 END AS km_per_liter`).
		Joins("JOIN vehicles ON vehicles.id = fuel_records.vehicle_id").
		Where("fuel_records.date >= ? AND fuel_records.date < ?", from, to).
		Group("fuel_records.vehicle_id, vehicles.callsign").
		Order("vehicles.callsign ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) MaintenanceCosts(from, to time.Time) ([]MaintenanceCostRow, error) {
	var rows []MaintenanceCostRow
	err := r.db.Model(&models.Maintenance{}).
		Select(`maintenances.vehicle_id AS vehicle_id, vehicles.callsign,
			COUNT(maintenances.id) AS job_count,
			COALESCE(SUM(maintenances.electrical_cost), 0) AS electrical_cost,
			COALESCE(SUM(maintenances.fabrication_cost), 0) AS fabrication_cost,
			COALESCE(SUM(maintenances.insurance_cost), 0) AS insurance_cost,
			COALESCE(SUM(maintenances.other_cost), 0) AS other_cost,
			COALESCE(SUM(maintenances.electrical_cost + maintenances.fabrication_cost
				+ maintenances.insurance_cost + maintenances.other_cost), 0) AS total_cost`).
		Joins("JOIN vehicles ON vehicles.id = maintenances.vehicle_id").
		Where("maintenances.date_in >= ? AND maintenances.date_in < ?", from, to).
		Group("maintenances.vehicle_id, vehicles.callsign").
		Order("total_cost DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) VehicleHealth() ([]VehicleHealthRow, error) {
	var rows []VehicleHealthRow
	err := r.db.Model(&models.Vehicle{}).
		Select(`vehicles.id AS vehicle_id, vehicles.callsign, vehicles.status, vehicles.mileage,
			vehicles.last_service, vehicles.last_tire_change_activity, vehicles.next_service,
			(SELECT overall_rating FROM inspections
				WHERE inspections.vehicle_id = vehicles.id AND inspections.deleted_at IS NULL
				ORDER BY inspections.date DESC LIMIT 1) AS last_inspection_rating,
			(SELECT COUNT(*) FROM maintenances
				WHERE maintenances.vehicle_id = vehicles.id AND maintenances.deleted_at IS NULL
				AND maintenances.status != 'Completed') AS open_maintenance_jobs`).
		Order("vehicles.callsign ASC").
		Scan(&rows).Error
	return rows, err
}
