package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/skatespot-service/internal/config"
	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
)

const geocodeMaxBackoff = 10 * time.Second

// GeocodeUseCase обрабатывает обратное геокодирование с кешем и ретраями
type GeocodeUseCase struct {
	geocoder  repository.GeocoderRepository
	cacheRepo repository.CacheRepository
	cfg       *config.GeocoderConfig
	logger    *zap.Logger
}

// NewGeocodeUseCase создает новый экземпляр GeocodeUseCase
func NewGeocodeUseCase(
	geocoder repository.GeocoderRepository,
	cacheRepo repository.CacheRepository,
	cfg *config.GeocoderConfig,
	logger *zap.Logger,
) *GeocodeUseCase {
	return &GeocodeUseCase{
		geocoder:  geocoder,
		cacheRepo: cacheRepo,
		cfg:       cfg,
		logger:    logger,
	}
}

// ResolveAddress возвращает адрес точки, используя кеш когда возможно.
// При недоступном провайдере после всех ретраев возвращается сентинел,
// а не ошибка: выдача спотов не должна падать из-за геокодера.
func (uc *GeocodeUseCase) ResolveAddress(ctx context.Context, lat, lon float64) (domain.AddressInfo, error) {
	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetAddress(ctx, lat, lon)
	if err != nil {
		uc.logger.Warn("Failed to get address from cache", zap.Error(err))
	}
	if cached != nil {
		return *cached, nil
	}

	// 2. Запрашиваем провайдера с экспоненциальным backoff.
	// Пауза идёт перед каждой попыткой, включая первую: публичный
	// Nominatim банит агрессивных клиентов.
	for attempt := 0; attempt < uc.cfg.MaxRetries; attempt++ {
		if err := uc.wait(ctx, uc.backoffDelay(attempt)); err != nil {
			return domain.AddressInfo{}, err
		}

		info, err := uc.geocoder.ReverseGeocode(ctx, lat, lon)
		if err != nil {
			if ctx.Err() != nil {
				return domain.AddressInfo{}, ctx.Err()
			}
			uc.logger.Warn("Reverse geocode attempt failed",
				zap.Int("attempt", attempt+1),
				zap.Float64("lat", lat),
				zap.Float64("lon", lon),
				zap.Error(err))
			continue
		}

		// 3. Кешируем успешный результат
		if err := uc.cacheRepo.SetAddress(ctx, lat, lon, *info); err != nil {
			uc.logger.Warn("Failed to cache address", zap.Error(err))
		}

		return *info, nil
	}

	// Сентинел не кешируется: следующий запрос попробует снова
	uc.logger.Error("Reverse geocode retries exhausted",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.Int("retries", uc.cfg.MaxRetries))
	return domain.FailedAddress(), nil
}

// ResolveBatch геокодирует точки пачками с паузой между пачками,
// чтобы не выбирать лимит провайдера одним залпом
func (uc *GeocodeUseCase) ResolveBatch(ctx context.Context, points []domain.Point) ([]domain.AddressInfo, error) {
	results := make([]domain.AddressInfo, 0, len(points))

	for i, p := range points {
		if i > 0 && i%uc.cfg.BatchSize == 0 {
			if err := uc.wait(ctx, uc.cfg.BatchPause); err != nil {
				return results, err
			}
		}

		info, err := uc.ResolveAddress(ctx, p.Lat, p.Lon)
		if err != nil {
			return results, err
		}
		results = append(results, info)
	}

	return results, nil
}

// CachedAddress возвращает адрес из кеша без похода к провайдеру
func (uc *GeocodeUseCase) CachedAddress(ctx context.Context, lat, lon float64) (*domain.AddressInfo, error) {
	return uc.cacheRepo.GetAddress(ctx, lat, lon)
}

func (uc *GeocodeUseCase) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (uc *GeocodeUseCase) backoffDelay(attempt int) time.Duration {
	base := uc.cfg.BackoffBase
	if base <= 0 {
		base = time.Second
	}

	d := base << attempt
	if d > geocodeMaxBackoff {
		return geocodeMaxBackoff
	}
	return d
}
