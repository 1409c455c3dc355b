package utils

import (
	"fmt"
	"os"
	"strings"
)

// GenerateDownloadLink turns a generated file path into an absolute URL based
// on the configured base URL (http for development, https in production).
func GenerateDownloadLink(filePath string) string {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	filePath = strings.TrimPrefix(filePath, "./")
	filePath = strings.TrimPrefix(filePath, "/")
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(base, "/"), filePath)
}
