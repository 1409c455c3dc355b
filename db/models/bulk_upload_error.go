package models

import (
	"time"

	"github.com/google/uuid"
)

type BulkUploadErrorType string

const (
	MissingDataErrorType BulkUploadErrorType = "MISSING_DATA"
	InvalidDateErrorType BulkUploadErrorType = "INVALID_DATE"
	UnknownCallsignType  BulkUploadErrorType = "UNKNOWN_CALLSIGN"
	DuplicateErrorType   BulkUploadErrorType = "DUPLICATE"
)

type AddedViaType string

const (
	SingleAddedViaType AddedViaType = "single"
	BulkAddedViaType   AddedViaType = "bulk"
)

// BulkUploadError is one skipped spreadsheet row, logged so a report of the
// rejects can be generated and mailed after an upload. The API response only
// carries a bounded sample of reasons; this table keeps the rest.
type BulkUploadError struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key;" json:"id"`
	Domain    string              `gorm:"not null;index" json:"domain"` // vehicles, fuel, inspections, maintenance
	RowNumber int                 `json:"row_number"`
	Callsign  string              `json:"callsign"`
	Reason    string              `json:"reason"`
	ErrorType BulkUploadErrorType `json:"error_type"`
	AddedVia  AddedViaType        `json:"added_via"`
	CreatedBy string              `json:"created_by"`
	CreatedAt time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}
