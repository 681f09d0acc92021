package usecase

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/config"
	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/infrastructure/mailer"
	"github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/pkg/utils"
	"github.com/skatespot-service/internal/usecase/dto"
)

// SpotImage - загружаемая картинка спота
type SpotImage struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

// SpotUseCase обрабатывает бизнес-логику спотов
type SpotUseCase struct {
	spotRepo    repository.SpotRepository
	storageRepo repository.StorageRepository
	streamRepo  repository.StreamRepository
	profileRepo repository.ProfileRepository
	geocode     *GeocodeUseCase
	mailer      *mailer.Mailer
	cfg         *config.DiscoveryConfig
	logger      *zap.Logger
}

// NewSpotUseCase создает новый экземпляр SpotUseCase
func NewSpotUseCase(
	spotRepo repository.SpotRepository,
	storageRepo repository.StorageRepository,
	streamRepo repository.StreamRepository,
	profileRepo repository.ProfileRepository,
	geocode *GeocodeUseCase,
	m *mailer.Mailer,
	cfg *config.DiscoveryConfig,
	logger *zap.Logger,
) *SpotUseCase {
	return &SpotUseCase{
		spotRepo:    spotRepo,
		storageRepo: storageRepo,
		streamRepo:  streamRepo,
		profileRepo: profileRepo,
		geocode:     geocode,
		mailer:      m,
		cfg:         cfg,
		logger:      logger,
	}
}

// Create добавляет новый спот. Спот отклоняется, если в радиусе минимальной
// дистанции уже есть другой спот. Новые споты ждут одобрения модератора.
func (uc *SpotUseCase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateSpotRequest, image *SpotImage) (*domain.Spot, error) {
	// 1. Валидация координат и категории
	if !utils.ValidateCoordinates(req.Latitude, req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}
	if !domain.IsValidCategory(req.Category) {
		return nil, errors.ErrInvalidCategory
	}

	// 2. Проверка минимальной дистанции до существующих спотов
	tooClose, err := uc.hasSpotWithin(ctx, req.Latitude, req.Longitude, uc.cfg.MinSpotSeparation)
	if err != nil {
		return nil, err
	}
	if tooClose {
		return nil, errors.ErrSpotTooClose
	}

	spot := &domain.Spot{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     req.Title,
		Category:  domain.SpotCategory(req.Category),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		CreatedAt: time.Now(),
	}

	// 3. Загрузка картинки, если приложена
	if image != nil {
		objectName := fmt.Sprintf("spots/%s", spot.ID)
		url, err := uc.storageRepo.Upload(ctx, objectName, image.Reader, image.Size, image.ContentType)
		if err != nil {
			return nil, err
		}
		spot.ImageURL = &url
	}

	// 4. Сохранение
	if err := uc.spotRepo.Create(ctx, spot); err != nil {
		return nil, err
	}

	// 5. Событие для prefetch-воркера и подписчиков выдачи
	uc.publishChange(ctx, spot.ID, domain.ActionCreated)

	uc.logger.Info("Spot created",
		zap.String("id", spot.ID.String()),
		zap.String("category", string(spot.Category)))

	return spot, nil
}

// GetByID возвращает спот с адресом и городом
func (uc *SpotUseCase) GetByID(ctx context.Context, id uuid.UUID, viewer domain.Viewer) (*dto.SpotResponse, error) {
	spot, err := uc.spotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !spot.IsApproved && !viewer.IsAdmin {
		return nil, errors.ErrSpotNotApproved
	}

	addr, err := uc.geocode.ResolveAddress(ctx, spot.Latitude, spot.Longitude)
	if err != nil {
		return nil, err
	}

	resp := &dto.SpotResponse{
		Spot:    *spot,
		Address: addr.Address,
		City:    addr.City,
	}

	if viewer.Location != nil {
		d := utils.DistanceMeters(viewer.Location.Lat, viewer.Location.Lon, spot.Latitude, spot.Longitude)
		resp.DistanceMeters = &d
	}

	return resp, nil
}

// Approve помечает спот одобренным (только для админов). Автор получает
// письмо, ошибки почты не влияют на результат.
func (uc *SpotUseCase) Approve(ctx context.Context, id uuid.UUID, viewer domain.Viewer) error {
	if !viewer.IsAdmin {
		return errors.ErrForbidden
	}

	spot, err := uc.spotRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.spotRepo.Approve(ctx, id); err != nil {
		return err
	}

	uc.publishChange(ctx, id, domain.ActionApproved)

	if owner, err := uc.profileRepo.GetByID(ctx, spot.UserID); err == nil && owner.Email != "" {
		if err := uc.mailer.SendSpotApproved(owner.Email, spot.Title); err != nil {
			uc.logger.Warn("Failed to send approval notice", zap.Error(err))
		}
	}

	uc.logger.Info("Spot approved", zap.String("id", id.String()))
	return nil
}

// Delete удаляет спот. Разрешено автору и админам.
func (uc *SpotUseCase) Delete(ctx context.Context, id, userID uuid.UUID, isAdmin bool) error {
	spot, err := uc.spotRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if spot.UserID != userID && !isAdmin {
		return errors.ErrForbidden
	}

	if err := uc.spotRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.publishChange(ctx, id, domain.ActionDeleted)

	uc.logger.Info("Spot deleted", zap.String("id", id.String()))
	return nil
}

// GetPending возвращает неодобренные споты для модерации
func (uc *SpotUseCase) GetPending(ctx context.Context, viewer domain.Viewer) ([]*domain.Spot, error) {
	if !viewer.IsAdmin {
		return nil, errors.ErrForbidden
	}

	all, err := uc.spotRepo.GetAll(ctx, true)
	if err != nil {
		return nil, err
	}

	pending := make([]*domain.Spot, 0)
	for _, s := range all {
		if !s.IsApproved {
			pending = append(pending, s)
		}
	}

	return pending, nil
}

// hasSpotWithin проверяет наличие спота ближе separation метров.
// Выборка идёт по прямоугольнику чуть шире радиуса, точная дистанция
// считается по хаверсину.
func (uc *SpotUseCase) hasSpotWithin(ctx context.Context, lat, lon, separation float64) (bool, error) {
	// Один градус широты ~111 км, градус долготы сжимается к полюсам
	latDelta := separation / 111000.0 * 2
	lonDelta := latDelta / math.Cos(lat*math.Pi/180)

	spots, err := uc.spotRepo.GetInBoundingBox(ctx, lat-latDelta, lon-lonDelta, lat+latDelta, lon+lonDelta)
	if err != nil {
		return false, err
	}

	for _, s := range spots {
		if utils.DistanceMeters(lat, lon, s.Latitude, s.Longitude) < separation {
			return true, nil
		}
	}

	return false, nil
}

func (uc *SpotUseCase) publishChange(ctx context.Context, id uuid.UUID, action string) {
	event := domain.ChangeEvent{
		EntityID:  id,
		Action:    action,
		Timestamp: time.Now(),
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamSpotsChanged, event); err != nil {
		uc.logger.Warn("Failed to publish spot change event",
			zap.String("id", id.String()),
			zap.String("action", action),
			zap.Error(err))
	}
}
