package tasks

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	TypeUploadErrorReport = "upload:error_report"
	TypeVehicleReindex    = "vehicles:reindex"
)

// UploadErrorReportPayload asks the worker to build a workbook of the skipped
// rows of one upload and mail a download link to the uploader.
type UploadErrorReportPayload struct {
	Domain    string      `json:"domain"`
	Recipient string      `json:"recipient"`
	ErrorIDs  []uuid.UUID `json:"error_ids"`
}

func NewUploadErrorReportTask(domain, recipient string, errorIDs []uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(UploadErrorReportPayload{
		Domain:    domain,
		Recipient: recipient,
		ErrorIDs:  errorIDs,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeUploadErrorReport, payload, asynq.MaxRetry(3)), nil
}

// VehicleReindexPayload asks the worker to refresh the search index for the
// given vehicles, typically right after a bulk commit.
type VehicleReindexPayload struct {
	VehicleIDs []uuid.UUID `json:"vehicle_ids"`
}

func NewVehicleReindexTask(vehicleIDs []uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(VehicleReindexPayload{VehicleIDs: vehicleIDs})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeVehicleReindex, payload, asynq.MaxRetry(3)), nil
}
