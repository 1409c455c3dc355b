package tasks

import (
	indexing_repository "fleet-backend/bleve/repositories"
	"fleet-backend/config"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RunWorker starts the embedded asynq server that processes background jobs
// (error report emails, search reindexing). Runs in its own goroutine.
func RunWorker(redisAddr string, db *gorm.DB, bleveRepo indexing_repository.BleveRepositoryInterface) *asynq.Server {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	handler := NewTaskHandler(db, bleveRepo)
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeUploadErrorReport, handler.HandleUploadErrorReport)
	mux.HandleFunc(TypeVehicleReindex, handler.HandleVehicleReindex)

	go func() {
		if err := srv.Run(mux); err != nil {
			config.Logger.Error("Asynq worker stopped", zap.Error(err))
		}
	}()

	config.Logger.Info("Background worker started", zap.String("redis", redisAddr))
	return srv
}
