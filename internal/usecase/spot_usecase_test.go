package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/config"
	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/infrastructure/mailer"
	"github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/usecase"
	"github.com/skatespot-service/internal/usecase/dto"
)

func discoveryConfig() *config.DiscoveryConfig {
	return &config.DiscoveryConfig{
		PageSize:          10,
		MinSpotSeparation: 50,
	}
}

func newSpotUseCase(spotRepo *MockSpotRepository, streamRepo *MockStreamRepository, profileRepo *MockProfileRepository) *usecase.SpotUseCase {
	logger := zap.NewNop()
	mockCache := &MockCacheRepository{}
	mockGeocoder := &MockGeocoderRepository{}
	geocode := usecase.NewGeocodeUseCase(mockGeocoder, mockCache, geocoderConfig(1), logger)
	m := mailer.New(&config.SMTPConfig{Enabled: false}, logger)
	return usecase.NewSpotUseCase(spotRepo, &MockStorageRepository{}, streamRepo, profileRepo, geocode, m, discoveryConfig(), logger)
}

func TestSpotUseCase_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("rejects spot too close to existing", func(t *testing.T) {
		mockSpots := &MockSpotRepository{}
		mockStream := &MockStreamRepository{}

		// ~22 m away from the requested point
		existing := &domain.Spot{
			ID:        uuid.New(),
			Latitude:  56.9502,
			Longitude: 24.1,
		}
		mockSpots.On("GetInBoundingBox", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]*domain.Spot{existing}, nil)

		uc := newSpotUseCase(mockSpots, mockStream, &MockProfileRepository{})

		_, err := uc.Create(ctx, userID, &dto.CreateSpotRequest{
			Title:     "New rail",
			Category:  "rail",
			Latitude:  56.95,
			Longitude: 24.1,
		}, nil)

		assert.ErrorIs(t, err, errors.ErrSpotTooClose)
		mockSpots.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("creates spot and publishes change event", func(t *testing.T) {
		mockSpots := &MockSpotRepository{}
		mockStream := &MockStreamRepository{}

		mockSpots.On("GetInBoundingBox", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]*domain.Spot{}, nil)
		mockSpots.On("Create", ctx, mock.AnythingOfType("*domain.Spot")).Return(nil)
		mockStream.On("PublishToStream", ctx, domain.StreamSpotsChanged, mock.Anything).Return(nil)

		uc := newSpotUseCase(mockSpots, mockStream, &MockProfileRepository{})

		spot, err := uc.Create(ctx, userID, &dto.CreateSpotRequest{
			Title:     "New rail",
			Category:  "rail",
			Latitude:  56.95,
			Longitude: 24.1,
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, domain.CategoryRail, spot.Category)
		assert.False(t, spot.IsApproved)
		mockStream.AssertCalled(t, "PublishToStream", ctx, domain.StreamSpotsChanged, mock.Anything)
	})

	t.Run("rejects invalid category", func(t *testing.T) {
		mockSpots := &MockSpotRepository{}
		uc := newSpotUseCase(mockSpots, &MockStreamRepository{}, &MockProfileRepository{})

		_, err := uc.Create(ctx, userID, &dto.CreateSpotRequest{
			Title:     "Pool",
			Category:  "swimming_pool",
			Latitude:  56.95,
			Longitude: 24.1,
		}, nil)

		assert.ErrorIs(t, err, errors.ErrInvalidCategory)
	})

	t.Run("rejects invalid coordinates", func(t *testing.T) {
		mockSpots := &MockSpotRepository{}
		uc := newSpotUseCase(mockSpots, &MockStreamRepository{}, &MockProfileRepository{})

		_, err := uc.Create(ctx, userID, &dto.CreateSpotRequest{
			Title:     "Nowhere",
			Category:  "rail",
			Latitude:  91,
			Longitude: 24.1,
		}, nil)

		assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)
	})
}

func TestSpotUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()
	spotID := uuid.New()

	spot := &domain.Spot{ID: spotID, UserID: owner, IsApproved: true}

	t.Run("owner can delete", func(t *testing.T) {
		mockSpots := &MockSpotRepository{}
		mockStream := &MockStreamRepository{}
		mockSpots.On("GetByID", ctx, spotID).Return(spot, nil)
		mockSpots.On("Delete", ctx, spotID).Return(nil)
		mockStream.On("PublishToStream", ctx, domain.StreamSpotsChanged, mock.Anything).Return(nil)

		uc := newSpotUseCase(mockSpots, mockStream, &MockProfileRepository{})
		assert.NoError(t, uc.Delete(ctx, spotID, owner, false))
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		mockSpots := &MockSpotRepository{}
		mockSpots.On("GetByID", ctx, spotID).Return(spot, nil)

		uc := newSpotUseCase(mockSpots, &MockStreamRepository{}, &MockProfileRepository{})
		assert.ErrorIs(t, uc.Delete(ctx, spotID, stranger, false), errors.ErrForbidden)
	})

	t.Run("admin can delete someone else's spot", func(t *testing.T) {
		mockSpots := &MockSpotRepository{}
		mockStream := &MockStreamRepository{}
		mockSpots.On("GetByID", ctx, spotID).Return(spot, nil)
		mockSpots.On("Delete", ctx, spotID).Return(nil)
		mockStream.On("PublishToStream", ctx, domain.StreamSpotsChanged, mock.Anything).Return(nil)

		uc := newSpotUseCase(mockSpots, mockStream, &MockProfileRepository{})
		assert.NoError(t, uc.Delete(ctx, spotID, stranger, true))
	})
}

func TestSpotUseCase_Approve(t *testing.T) {
	ctx := context.Background()
	spotID := uuid.New()

	t.Run("admin approves", func(t *testing.T) {
		ownerID := uuid.New()
		mockSpots := &MockSpotRepository{}
		mockStream := &MockStreamRepository{}
		mockProfiles := &MockProfileRepository{}
		mockSpots.On("GetByID", ctx, spotID).Return(&domain.Spot{ID: spotID, UserID: ownerID, Title: "Rail"}, nil)
		mockSpots.On("Approve", ctx, spotID).Return(nil)
		mockStream.On("PublishToStream", ctx, domain.StreamSpotsChanged, mock.Anything).Return(nil)
		mockProfiles.On("GetByID", ctx, ownerID).Return(&domain.Profile{ID: ownerID, Username: "skater"}, nil)

		uc := newSpotUseCase(mockSpots, mockStream, mockProfiles)
		assert.NoError(t, uc.Approve(ctx, spotID, domain.Viewer{IsAdmin: true}))
	})

	t.Run("regular user forbidden", func(t *testing.T) {
		uc := newSpotUseCase(&MockSpotRepository{}, &MockStreamRepository{}, &MockProfileRepository{})
		assert.ErrorIs(t, uc.Approve(ctx, spotID, domain.Viewer{}), errors.ErrForbidden)
	})
}
