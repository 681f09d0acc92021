package tournament

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/skatespot-service/internal/usecase"
	"github.com/skatespot-service/internal/worker"
)

// Scheduler создаёт турниры по расписанию их шаблонов. Создание
// идемпотентно, поэтому интервал тикера не влияет на корректность.
type Scheduler struct {
	*worker.BaseWorker
	tournamentUC *usecase.TournamentUseCase
	interval     time.Duration
}

// NewScheduler создает новый Scheduler
func NewScheduler(tournamentUC *usecase.TournamentUseCase, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		BaseWorker:   worker.NewBaseWorker("tournament-scheduler", "", logger),
		tournamentUC: tournamentUC,
		interval:     interval,
	}
}

// Start запускает воркер
func (w *Scheduler) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting tournament scheduler", zap.Duration("interval", w.interval))

	// Первый прогон сразу, чтобы не ждать целый интервал после рестарта
	w.ensure(ctx)

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
			w.ensure(ctx)
		}
	}
}

func (w *Scheduler) ensure(ctx context.Context) {
	logger := w.Logger()

	created, err := w.tournamentUC.EnsureAutomated(ctx, time.Now())
	if err != nil {
		logger.Error("Failed to ensure tournaments", zap.Error(err))
		return
	}
	if created > 0 {
		logger.Info("Tournaments created", zap.Int("count", created))
	}
}
