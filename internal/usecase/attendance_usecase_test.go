package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/usecase"
	"github.com/skatespot-service/internal/usecase/dto"
)

func TestAttendanceUseCase_Attend(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	spotID := uuid.New()
	userID := uuid.New()

	approvedSpot := &domain.Spot{ID: spotID, IsApproved: true}

	t.Run("creates record and publishes event", func(t *testing.T) {
		mockSpots := &MockSpotRepository{}
		mockAttendance := &MockAttendanceRepository{}
		mockStream := &MockStreamRepository{}

		mockSpots.On("GetByID", ctx, spotID).Return(approvedSpot, nil)
		mockAttendance.On("GetByUserAndSpot", ctx, userID, spotID).Return(nil, errors.ErrAttendanceNotFound)
		mockAttendance.On("Create", ctx, mock.AnythingOfType("*domain.AttendanceRecord")).Return(nil)
		mockStream.On("PublishToStream", ctx, domain.StreamAttendanceChanged, mock.Anything).Return(nil)

		uc := usecase.NewAttendanceUseCase(mockAttendance, mockSpots, mockStream, logger)

		record, err := uc.Attend(ctx, spotID, userID, "skater", &dto.AttendRequest{
			StartTime:       time.Now().Format(time.RFC3339),
			DurationMinutes: 60,
		})

		require.NoError(t, err)
		assert.Equal(t, spotID, record.SpotID)
		assert.Equal(t, 60.0, record.DurationMinutes)
	})

	t.Run("rejects unapproved spot", func(t *testing.T) {
		mockSpots := &MockSpotRepository{}
		mockSpots.On("GetByID", ctx, spotID).Return(&domain.Spot{ID: spotID}, nil)

		uc := usecase.NewAttendanceUseCase(&MockAttendanceRepository{}, mockSpots, &MockStreamRepository{}, logger)

		_, err := uc.Attend(ctx, spotID, userID, "skater", &dto.AttendRequest{
			StartTime:       time.Now().Format(time.RFC3339),
			DurationMinutes: 60,
		})

		assert.ErrorIs(t, err, errors.ErrSpotNotApproved)
	})

	t.Run("rejects double attendance", func(t *testing.T) {
		mockSpots := &MockSpotRepository{}
		mockAttendance := &MockAttendanceRepository{}

		mockSpots.On("GetByID", ctx, spotID).Return(approvedSpot, nil)
		mockAttendance.On("GetByUserAndSpot", ctx, userID, spotID).Return(&domain.AttendanceRecord{
			ID:              uuid.New(),
			SpotID:          spotID,
			UserID:          userID,
			StartTime:       time.Now(),
			DurationMinutes: 60,
		}, nil)

		uc := usecase.NewAttendanceUseCase(mockAttendance, mockSpots, &MockStreamRepository{}, logger)

		_, err := uc.Attend(ctx, spotID, userID, "skater", &dto.AttendRequest{
			StartTime:       time.Now().Format(time.RFC3339),
			DurationMinutes: 30,
		})

		assert.ErrorIs(t, err, errors.ErrAlreadyAttending)
	})

	t.Run("rejects malformed start time", func(t *testing.T) {
		mockSpots := &MockSpotRepository{}
		mockSpots.On("GetByID", ctx, spotID).Return(approvedSpot, nil)

		uc := usecase.NewAttendanceUseCase(&MockAttendanceRepository{}, mockSpots, &MockStreamRepository{}, logger)

		_, err := uc.Attend(ctx, spotID, userID, "skater", &dto.AttendRequest{
			StartTime:       "yesterday",
			DurationMinutes: 30,
		})

		assert.Error(t, err)
	})
}

func TestAttendanceUseCase_GetForSpot(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	spotID := uuid.New()
	now := time.Now()

	expired := domain.AttendanceRecord{
		ID:              uuid.New(),
		SpotID:          spotID,
		StartTime:       now.Add(-2 * time.Hour),
		DurationMinutes: 30,
	}
	active := domain.AttendanceRecord{
		ID:              uuid.New(),
		SpotID:          spotID,
		StartTime:       now.Add(-10 * time.Minute),
		DurationMinutes: 60,
	}

	mockAttendance := &MockAttendanceRepository{}
	mockAttendance.On("GetBySpot", ctx, spotID).Return([]domain.AttendanceRecord{expired, active}, nil)
	mockAttendance.On("DeleteBatch", ctx, []uuid.UUID{expired.ID}).Return(nil)

	uc := usecase.NewAttendanceUseCase(mockAttendance, &MockSpotRepository{}, &MockStreamRepository{}, logger)

	resp, err := uc.GetForSpot(ctx, spotID)
	require.NoError(t, err)

	assert.Len(t, resp.Records, 1)
	assert.Equal(t, active.ID, resp.Records[0].ID)
	assert.Equal(t, 1, resp.Summary.Active)
	assert.False(t, resp.Summary.IsEmpty)
	mockAttendance.AssertCalled(t, "DeleteBatch", ctx, []uuid.UUID{expired.ID})
}

func TestAttendanceUseCase_Sweep(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	spotID := uuid.New()
	now := time.Now()

	expired := domain.AttendanceRecord{
		ID:              uuid.New(),
		SpotID:          spotID,
		StartTime:       now.Add(-3 * time.Hour),
		DurationMinutes: 15,
	}
	scheduled := domain.AttendanceRecord{
		ID:              uuid.New(),
		SpotID:          spotID,
		StartTime:       now.Add(time.Hour),
		DurationMinutes: 60,
	}

	mockSpots := &MockSpotRepository{}
	mockAttendance := &MockAttendanceRepository{}
	mockStream := &MockStreamRepository{}

	mockSpots.On("GetAll", ctx, true).Return([]*domain.Spot{{ID: spotID}}, nil)
	mockAttendance.On("GetBySpots", ctx, []uuid.UUID{spotID}).Return(map[uuid.UUID][]domain.AttendanceRecord{
		spotID: {expired, scheduled},
	}, nil)
	mockAttendance.On("DeleteBatch", ctx, []uuid.UUID{expired.ID}).Return(nil)
	mockStream.On("PublishToStream", ctx, domain.StreamAttendanceChanged, mock.Anything).Return(nil)

	uc := usecase.NewAttendanceUseCase(mockAttendance, mockSpots, mockStream, logger)

	swept, err := uc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)
	mockStream.AssertCalled(t, "PublishToStream", ctx, domain.StreamAttendanceChanged, mock.Anything)
}
