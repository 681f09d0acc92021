package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/usecase/dto"
)

// AttendanceUseCase обрабатывает отметки "я на споте"
type AttendanceUseCase struct {
	attendanceRepo repository.AttendanceRepository
	spotRepo       repository.SpotRepository
	streamRepo     repository.StreamRepository
	logger         *zap.Logger
}

// NewAttendanceUseCase создает новый экземпляр AttendanceUseCase
func NewAttendanceUseCase(
	attendanceRepo repository.AttendanceRepository,
	spotRepo repository.SpotRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *AttendanceUseCase {
	return &AttendanceUseCase{
		attendanceRepo: attendanceRepo,
		spotRepo:       spotRepo,
		streamRepo:     streamRepo,
		logger:         logger,
	}
}

// Attend создает отметку посещения спота. Повторная отметка на том же
// споте не допускается, пока предыдущая не удалена или не истекла.
func (uc *AttendanceUseCase) Attend(ctx context.Context, spotID, userID uuid.UUID, username string, req *dto.AttendRequest) (*domain.AttendanceRecord, error) {
	spot, err := uc.spotRepo.GetByID(ctx, spotID)
	if err != nil {
		return nil, err
	}
	if !spot.IsApproved {
		return nil, errors.ErrSpotNotApproved
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"start_time": "must be RFC3339",
		})
	}

	existing, err := uc.attendanceRepo.GetByUserAndSpot(ctx, userID, spotID)
	if err != nil && err != errors.ErrAttendanceNotFound {
		return nil, err
	}
	if existing != nil && existing.Status(time.Now()) != domain.AttendanceExpired {
		return nil, errors.ErrAlreadyAttending
	}

	record := &domain.AttendanceRecord{
		ID:              uuid.New(),
		SpotID:          spotID,
		UserID:          userID,
		Username:        username,
		StartTime:       startTime,
		DurationMinutes: req.DurationMinutes,
	}

	if err := uc.attendanceRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	uc.publishChange(ctx, spotID, domain.ActionCreated)

	uc.logger.Info("Attendance created",
		zap.String("spot_id", spotID.String()),
		zap.String("user_id", userID.String()),
		zap.Float64("duration_minutes", req.DurationMinutes))

	return record, nil
}

// Leave удаляет отметку пользователя со спота
func (uc *AttendanceUseCase) Leave(ctx context.Context, spotID, userID uuid.UUID) error {
	record, err := uc.attendanceRepo.GetByUserAndSpot(ctx, userID, spotID)
	if err != nil {
		return err
	}

	if err := uc.attendanceRepo.Delete(ctx, record.ID); err != nil {
		return err
	}

	uc.publishChange(ctx, spotID, domain.ActionDeleted)

	uc.logger.Info("Attendance removed",
		zap.String("spot_id", spotID.String()),
		zap.String("user_id", userID.String()))

	return nil
}

// GetForSpot возвращает живые записи спота со сводкой. Истекшие записи
// не удаляются на пути чтения: их ID уходят на фоновую зачистку, а ответ
// строится только по живым.
func (uc *AttendanceUseCase) GetForSpot(ctx context.Context, spotID uuid.UUID) (*dto.AttendanceResponse, error) {
	records, err := uc.attendanceRepo.GetBySpot(ctx, spotID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	live, expiredIDs := domain.SplitExpired(records, now)

	if len(expiredIDs) > 0 {
		if err := uc.attendanceRepo.DeleteBatch(ctx, expiredIDs); err != nil {
			uc.logger.Warn("Failed to clean up expired attendance",
				zap.String("spot_id", spotID.String()),
				zap.Int("count", len(expiredIDs)),
				zap.Error(err))
		}
	}

	return &dto.AttendanceResponse{
		Records: live,
		Summary: domain.Summarize(live, now),
	}, nil
}

// Sweep удаляет истекшие записи по всем спотам. Вызывается фоновым воркером.
func (uc *AttendanceUseCase) Sweep(ctx context.Context) (int, error) {
	spots, err := uc.spotRepo.GetAll(ctx, true)
	if err != nil {
		return 0, err
	}

	ids := make([]uuid.UUID, len(spots))
	for i, s := range spots {
		ids[i] = s.ID
	}

	bySpot, err := uc.attendanceRepo.GetBySpots(ctx, ids)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	var expired []uuid.UUID
	var touched []uuid.UUID
	for spotID, records := range bySpot {
		_, expiredIDs := domain.SplitExpired(records, now)
		if len(expiredIDs) > 0 {
			expired = append(expired, expiredIDs...)
			touched = append(touched, spotID)
		}
	}

	if len(expired) == 0 {
		return 0, nil
	}

	if err := uc.attendanceRepo.DeleteBatch(ctx, expired); err != nil {
		return 0, err
	}

	for _, spotID := range touched {
		uc.publishChange(ctx, spotID, domain.ActionDeleted)
	}

	uc.logger.Info("Expired attendance swept", zap.Int("count", len(expired)))
	return len(expired), nil
}

func (uc *AttendanceUseCase) publishChange(ctx context.Context, spotID uuid.UUID, action string) {
	event := domain.ChangeEvent{
		EntityID:  spotID,
		Action:    action,
		Timestamp: time.Now(),
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamAttendanceChanged, event); err != nil {
		uc.logger.Warn("Failed to publish attendance change event",
			zap.String("spot_id", spotID.String()),
			zap.Error(err))
	}
}
