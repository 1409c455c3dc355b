package middleware

import (
	"mime/multipart"
	"strings"
)

// The two spreadsheet interchange media types bulk uploads accept.
const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	xlsContentType  = "application/vnd.ms-excel"
)

// ValidExcelUpload checks the declared media type of an uploaded file before
// any parsing happens. Falls back to the filename extension when the client
// sent a generic content type.
func ValidExcelUpload(file *multipart.FileHeader) bool {
	ct := file.Header.Get("Content-Type")
	if ct == xlsxContentType || ct == xlsContentType {
		return true
	}
	name := strings.ToLower(file.Filename)
	return strings.HasSuffix(name, ".xlsx") || strings.HasSuffix(name, ".xls")
}
