package utils

import (
	"os"
	"path/filepath"
	"time"

	"fleet-backend/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Generated error reports are only useful for a short while; keep the public
// files directory from accumulating them.
const generatedFileTTL = 7 * 24 * time.Hour

// CleanupExpiredFiles removes generated files older than the TTL.
func CleanupExpiredFiles(dir string, ttl time.Duration) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			config.Logger.Warn("Cleanup could not read directory", zap.String("dir", dir), zap.Error(err))
		}
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) > ttl {
			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err != nil {
				config.Logger.Warn("Failed to delete expired file", zap.String("path", path), zap.Error(err))
			} else {
				config.Logger.Info("Deleted expired generated file", zap.String("path", path))
			}
		}
	}
}

// RunScheduledCleanup purges expired generated report files once a day.
func RunScheduledCleanup() *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		CleanupExpiredFiles("./public/files", generatedFileTTL)
	})
	if err != nil {
		config.Logger.Error("Failed to schedule cleanup job", zap.Error(err))
		return c
	}
	c.Start()
	config.Logger.Info("Scheduled daily cleanup of generated files")
	return c
}
