package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"fleet-backend/db/models"

	"github.com/xuri/excelize/v2"
)

// EnsureDirectoryExists ensures the specified directory exists before file saving
func EnsureDirectoryExists(filePath string) error {
	dir := filepath.Dir(filePath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return fmt.Errorf("error creating directory: %v", err)
		}
	}
	return nil
}

// BuildTemplateWorkbook produces the downloadable bulk-upload template for
// one domain: the canonical header row plus a single example row. The headers
// here are the contract the ingestion column dictionaries decode, so the two
// must stay in sync.
func BuildTemplateWorkbook(sheetName string, headers []string, sample []interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.DeleteSheet("Sheet1")

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("error setting header %s: %v", header, err)
		}
	}
	for col, value := range sample {
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return nil, fmt.Errorf("error setting sample value at column %d: %v", col+1, err)
		}
	}

	f.SetActiveSheet(index)
	return f, nil
}

// GenerateErrorReport writes the skipped rows of one upload to an Excel file
// under ./public/files and returns its path. The caller turns the path into a
// download link for the report email.
func GenerateErrorReport(domain, reportID string, rows []models.BulkUploadError) (string, error) {
	dirPath := "./public/files"
	if err := EnsureDirectoryExists(dirPath + "/placeholder"); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	sheetName := "Errors"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}
	f.DeleteSheet("Sheet1")

	headers := []string{"Row", "Callsign", "Reason", "ErrorType"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return "", err
		}
	}
	for i, row := range rows {
		values := []interface{}{row.RowNumber, row.Callsign, row.Reason, string(row.ErrorType)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return "", err
			}
		}
	}

	f.SetActiveSheet(index)
	filePath := fmt.Sprintf("%s/%s_upload_errors_%s.xlsx", dirPath, domain, reportID)
	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving error report: %v", err)
	}
	return filePath, nil
}
