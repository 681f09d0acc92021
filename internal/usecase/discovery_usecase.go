package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/config"
	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/pkg/utils"
	"github.com/skatespot-service/internal/usecase/dto"
)

// DiscoveryUseCase собирает поисковую выдачу спотов: данные из БД,
// города из кеша геокодера, сводки посещаемости и фильтрация в домене
type DiscoveryUseCase struct {
	spotRepo       repository.SpotRepository
	attendanceRepo repository.AttendanceRepository
	geocode        *GeocodeUseCase
	cfg            *config.DiscoveryConfig
	logger         *zap.Logger
}

// NewDiscoveryUseCase создает новый экземпляр DiscoveryUseCase
func NewDiscoveryUseCase(
	spotRepo repository.SpotRepository,
	attendanceRepo repository.AttendanceRepository,
	geocode *GeocodeUseCase,
	cfg *config.DiscoveryConfig,
	logger *zap.Logger,
) *DiscoveryUseCase {
	return &DiscoveryUseCase{
		spotRepo:       spotRepo,
		attendanceRepo: attendanceRepo,
		geocode:        geocode,
		cfg:            cfg,
		logger:         logger,
	}
}

// Discover возвращает страницу выдачи по фильтрам запроса
func (uc *DiscoveryUseCase) Discover(ctx context.Context, req *dto.DiscoveryRequest, viewer domain.Viewer) (*dto.DiscoveryResponse, error) {
	if req.RadiusMeters > 0 && !utils.ValidateRadius(req.RadiusMeters) {
		return nil, errors.ErrInvalidRadius
	}
	if req.Lat != nil && req.Lon != nil {
		if !utils.ValidateCoordinates(*req.Lat, *req.Lon) {
			return nil, errors.ErrInvalidCoordinates
		}
		viewer.Location = &domain.Point{Lat: *req.Lat, Lon: *req.Lon}
	}

	// 1. Выборка спотов; неодобренные отсечёт доменный фильтр по viewer.
	// Фильтр по категории уходит в SQL, остальные предикаты доменные.
	spots, err := uc.fetchSpots(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	// 2. Посещаемость всех спотов одной выборкой
	ids := make([]uuid.UUID, len(spots))
	for i, s := range spots {
		ids[i] = s.ID
	}

	attendanceBySpot, err := uc.attendanceRepo.GetBySpots(ctx, ids)
	if err != nil {
		return nil, err
	}

	// 3. Обогащение: город из кеша, живая сводка. Промахи кеша не зовут
	// провайдера на пути запроса - этим занимается prefetch-воркер.
	now := time.Now()
	entries := make([]domain.DiscoveryEntry, 0, len(spots))
	var allExpired []uuid.UUID

	for _, s := range spots {
		live, expiredIDs := domain.SplitExpired(attendanceBySpot[s.ID], now)
		allExpired = append(allExpired, expiredIDs...)

		city := domain.UnknownCity
		if cached, err := uc.geocode.CachedAddress(ctx, s.Latitude, s.Longitude); err == nil && cached != nil {
			city = cached.City
		}

		entries = append(entries, domain.DiscoveryEntry{
			Spot:    *s,
			City:    city,
			Summary: domain.Summarize(live, now),
		})
	}

	// 4. Зачистка истёкших записей после чтения
	if len(allExpired) > 0 {
		if err := uc.attendanceRepo.DeleteBatch(ctx, allExpired); err != nil {
			uc.logger.Warn("Failed to clean up expired attendance",
				zap.Int("count", len(allExpired)),
				zap.Error(err))
		}
	}

	// 5. Фильтрация, сортировка и страница - чистый домен
	query := uc.buildQuery(req)
	result := domain.Discover(entries, query, viewer)

	resp := &dto.DiscoveryResponse{
		Spots:      make([]dto.SpotResponse, 0, len(result.Entries)),
		Total:      result.Total,
		Page:       result.Page,
		TotalPages: result.TotalPages,
	}
	for _, e := range result.Entries {
		resp.Spots = append(resp.Spots, dto.SpotResponse{
			Spot:           e.Spot,
			City:           e.City,
			Summary:        e.Summary,
			DistanceMeters: e.DistanceMeters,
		})
	}

	return resp, nil
}

// Cities возвращает список городов, в которых есть одобренные споты
func (uc *DiscoveryUseCase) Cities(ctx context.Context) ([]string, error) {
	spots, err := uc.spotRepo.GetAll(ctx, false)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	cities := make([]string, 0)
	for _, s := range spots {
		cached, err := uc.geocode.CachedAddress(ctx, s.Latitude, s.Longitude)
		if err != nil || cached == nil || cached.IsUnknown() {
			continue
		}
		if _, ok := seen[cached.City]; ok {
			continue
		}
		seen[cached.City] = struct{}{}
		cities = append(cities, cached.City)
	}

	return cities, nil
}

func (uc *DiscoveryUseCase) fetchSpots(ctx context.Context, category string) ([]*domain.Spot, error) {
	if category != "" && category != domain.CategoryAll {
		return uc.spotRepo.GetByCategories(ctx, []string{category}, true)
	}
	return uc.spotRepo.GetAll(ctx, true)
}

func (uc *DiscoveryUseCase) buildQuery(req *dto.DiscoveryRequest) domain.DiscoveryQuery {
	q := domain.NewDiscoveryQuery(uc.cfg.PageSize)
	if req.Search != "" {
		q = q.WithSearch(req.Search)
	}
	if req.Category != "" {
		q = q.WithCategory(req.Category)
	}
	if req.City != "" {
		q = q.WithCity(req.City)
	}
	if req.Status != "" {
		q = q.WithStatus(req.Status)
	}
	if req.RadiusMeters > 0 {
		q = q.WithRadius(req.RadiusMeters)
	}
	if req.Page > 0 {
		q = q.WithPage(req.Page)
	}
	return q
}
