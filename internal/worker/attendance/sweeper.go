package attendance

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/skatespot-service/internal/usecase"
	"github.com/skatespot-service/internal/worker"
)

// Sweeper периодически удаляет истёкшие записи посещаемости. Записи
// также чистятся при чтении, свипер добирает споты, которые давно
// никто не открывал.
type Sweeper struct {
	*worker.BaseWorker
	attendanceUC *usecase.AttendanceUseCase
	interval     time.Duration
}

// NewSweeper создает новый Sweeper
func NewSweeper(attendanceUC *usecase.AttendanceUseCase, interval time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		BaseWorker:   worker.NewBaseWorker("attendance-sweeper", "", logger),
		attendanceUC: attendanceUC,
		interval:     interval,
	}
}

// Start запускает воркер
func (w *Sweeper) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting attendance sweeper", zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-ticker.C:
			removed, err := w.attendanceUC.Sweep(ctx)
			if err != nil {
				logger.Error("Sweep failed", zap.Error(err))
				continue
			}
			if removed > 0 {
				logger.Info("Expired attendance removed", zap.Int("count", removed))
			}
		}
	}
}
