package repositories

import (
	"fleet-backend/config"
	"fleet-backend/db/models"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

const vehicleIndex = "vehicles"

// bleveVehicleDoc is the minimal document stored for searching the fleet.
type bleveVehicleDoc struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Callsign       string  `json:"callsign"`
	Model          string  `json:"model"`
	Status         string  `json:"status"`
	RegisteredCity string  `json:"registered_city"`
	OwnerName      string  `json:"owner_name"`
	RegistrationNo string  `json:"registration_no"`
	Mileage        float64 `json:"mileage"`
}

func vehicleDoc(v models.Vehicle) bleveVehicleDoc {
	return bleveVehicleDoc{
		ID:             v.ID.String(),
		Name:           v.Name,
		Callsign:       v.Callsign,
		Model:          v.Model,
		Status:         string(v.Status),
		RegisteredCity: v.RegisteredCity,
		OwnerName:      v.OwnerName,
		RegistrationNo: v.RegistrationNo,
		Mileage:        v.Mileage,
	}
}

func (r *BleveRepository) IndexSingleVehicle(vehicle models.Vehicle) error {
	err := r.indexer.IndexDocument(vehicleIndex, vehicle.ID.String(), vehicleDoc(vehicle))
	if err != nil {
		config.Logger.Error("Failed to index vehicle into Bleve",
			zap.Error(err),
			zap.String("vehicle_id", vehicle.ID.String()))
		return err
	}
	return nil
}

func (r *BleveRepository) IndexExistingVehicles(vehicles []models.Vehicle) error {
	docs := make(map[string]interface{}, len(vehicles))
	for _, v := range vehicles {
		docs[v.ID.String()] = vehicleDoc(v)
	}
	if err := r.indexer.BulkIndexDocuments(vehicleIndex, docs); err != nil {
		config.Logger.Error("Failed to bulk index vehicles into Bleve", zap.Error(err))
		return err
	}
	config.Logger.Info("Bulk indexed vehicles into Bleve", zap.Int("count", len(vehicles)))
	return nil
}

func (r *BleveRepository) UpdateVehicle(vehicle models.Vehicle) error {
	return r.IndexSingleVehicle(vehicle)
}

func (r *BleveRepository) DeleteVehicle(vehicleID string) error {
	return r.indexer.DeleteDocument(vehicleIndex, vehicleID)
}

// SearchVehicles runs a free-text query over the vehicle index, optionally
// narrowed by status and registered city.
func (r *BleveRepository) SearchVehicles(queryStr, status, city string, size int) (*bleve.SearchResult, error) {
	conjuncts := bleve.NewConjunctionQuery()
	if queryStr != "" {
		match := bleve.NewMatchQuery(queryStr)
		conjuncts.AddQuery(match)
	} else {
		conjuncts.AddQuery(bleve.NewMatchAllQuery())
	}
	if status != "" {
		q := bleve.NewMatchPhraseQuery(status)
		q.SetField("status")
		conjuncts.AddQuery(q)
	}
	if city != "" {
		q := bleve.NewMatchPhraseQuery(city)
		q.SetField("registered_city")
		conjuncts.AddQuery(q)
	}
	if size <= 0 {
		size = 50
	}
	return r.indexer.SearchIndex(vehicleIndex, conjuncts, size)
}
