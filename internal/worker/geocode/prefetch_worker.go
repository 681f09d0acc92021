package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/usecase"
	"github.com/skatespot-service/internal/worker"
)

// PrefetchWorker слушает стрим изменений спотов и заранее прогревает кеш
// адресов, чтобы поисковая выдача никогда не ходила в геокодер напрямую.
// Всплеск событий схлопывается дебаунсером в один батч.
type PrefetchWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	spotRepo     repository.SpotRepository
	geocodeUC    *usecase.GeocodeUseCase
	consumerName string

	mu       sync.Mutex
	pending  map[string]domain.Point
	debounce *usecase.Debouncer
}

// NewPrefetchWorker создает новый PrefetchWorker
func NewPrefetchWorker(
	streamRepo repository.StreamRepository,
	spotRepo repository.SpotRepository,
	geocodeUC *usecase.GeocodeUseCase,
	consumerGroup string,
	debounceWindow time.Duration,
	logger *zap.Logger,
) *PrefetchWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	w := &PrefetchWorker{
		BaseWorker:   worker.NewBaseWorker("geocode-prefetch", consumerGroup, logger),
		streamRepo:   streamRepo,
		spotRepo:     spotRepo,
		geocodeUC:    geocodeUC,
		consumerName: consumerName,
		pending:      make(map[string]domain.Point),
	}
	w.debounce = usecase.NewDebouncer(debounceWindow, w.resolvePending, logger)

	return w
}

// Start запускает воркер
func (w *PrefetchWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting geocode prefetch worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamSpotsChanged, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamSpotsChanged, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			w.debounce.Flush()
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

// handleMessage обрабатывает одно событие из стрима
func (w *PrefetchWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	event, err := w.parseMessage(msg)
	if err != nil {
		logger.Warn("Failed to parse message, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// ACK битое сообщение чтобы не застревало
		_ = w.streamRepo.AckMessage(ctx, domain.StreamSpotsChanged, w.ConsumerGroup(), msg.ID)
		return
	}

	// Удаление не требует геокодирования
	if event.Action != domain.ActionDeleted {
		spot, err := w.spotRepo.GetByID(ctx, event.EntityID)
		if err != nil {
			logger.Warn("Spot from event not found",
				zap.String("spot_id", event.EntityID.String()),
				zap.Error(err))
		} else {
			w.mu.Lock()
			w.pending[spot.ID.String()] = domain.Point{Lat: spot.Latitude, Lon: spot.Longitude}
			w.mu.Unlock()
			w.debounce.Trigger()
		}
	}

	if err := w.streamRepo.AckMessage(ctx, domain.StreamSpotsChanged, w.ConsumerGroup(), msg.ID); err != nil {
		logger.Error("Failed to ack message",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	}
}

// resolvePending геокодирует накопленные точки одним батчем
func (w *PrefetchWorker) resolvePending() {
	w.mu.Lock()
	points := make([]domain.Point, 0, len(w.pending))
	for _, p := range w.pending {
		points = append(points, p)
	}
	w.pending = make(map[string]domain.Point)
	w.mu.Unlock()

	if len(points) == 0 {
		return
	}

	logger := w.Logger()
	logger.Info("Prefetching addresses", zap.Int("count", len(points)))

	if _, err := w.geocodeUC.ResolveBatch(context.Background(), points); err != nil {
		logger.Error("Failed to prefetch addresses", zap.Error(err))
	}
}

// parseMessage парсит сообщение из стрима в ChangeEvent
func (w *PrefetchWorker) parseMessage(msg domain.StreamMessage) (*domain.ChangeEvent, error) {
	var event domain.ChangeEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}
