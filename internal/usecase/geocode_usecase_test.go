package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/config"
	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/usecase"
)

func geocoderConfig(retries int) *config.GeocoderConfig {
	return &config.GeocoderConfig{
		MaxRetries:  retries,
		BackoffBase: time.Millisecond,
		BatchSize:   2,
		BatchPause:  10 * time.Millisecond,
	}
}

func TestGeocodeUseCase_ResolveAddress(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("cache hit skips provider", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockGeocoder := &MockGeocoderRepository{}

		cached := &domain.AddressInfo{Address: "Krasta iela 1, Riga", City: "Riga"}
		mockCache.On("GetAddress", ctx, 56.95, 24.1).Return(cached, nil)

		uc := usecase.NewGeocodeUseCase(mockGeocoder, mockCache, geocoderConfig(3), logger)

		info, err := uc.ResolveAddress(ctx, 56.95, 24.1)
		require.NoError(t, err)
		assert.Equal(t, "Riga", info.City)
		mockGeocoder.AssertNotCalled(t, "ReverseGeocode", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("miss resolves and caches, second call hits cache", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockGeocoder := &MockGeocoderRepository{}

		resolved := &domain.AddressInfo{Address: "Skolas iela, Sigulda", City: "Sigulda"}

		mockCache.On("GetAddress", ctx, 57.15, 24.85).Return(nil, nil).Once()
		mockGeocoder.On("ReverseGeocode", ctx, 57.15, 24.85).Return(resolved, nil).Once()
		mockCache.On("SetAddress", ctx, 57.15, 24.85, *resolved).Return(nil).Once()
		mockCache.On("GetAddress", ctx, 57.15, 24.85).Return(resolved, nil).Once()

		uc := usecase.NewGeocodeUseCase(mockGeocoder, mockCache, geocoderConfig(3), logger)

		first, err := uc.ResolveAddress(ctx, 57.15, 24.85)
		require.NoError(t, err)
		assert.Equal(t, "Sigulda", first.City)

		second, err := uc.ResolveAddress(ctx, 57.15, 24.85)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		mockGeocoder.AssertNumberOfCalls(t, "ReverseGeocode", 1)
	})

	t.Run("retries then succeeds", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockGeocoder := &MockGeocoderRepository{}

		resolved := &domain.AddressInfo{Address: "Somewhere", City: "Riga"}

		mockCache.On("GetAddress", ctx, 1.0, 2.0).Return(nil, nil)
		mockGeocoder.On("ReverseGeocode", ctx, 1.0, 2.0).Return(nil, errors.New("timeout")).Once()
		mockGeocoder.On("ReverseGeocode", ctx, 1.0, 2.0).Return(resolved, nil).Once()
		mockCache.On("SetAddress", ctx, 1.0, 2.0, *resolved).Return(nil)

		uc := usecase.NewGeocodeUseCase(mockGeocoder, mockCache, geocoderConfig(2), logger)

		info, err := uc.ResolveAddress(ctx, 1.0, 2.0)
		require.NoError(t, err)
		assert.Equal(t, "Riga", info.City)
		mockGeocoder.AssertNumberOfCalls(t, "ReverseGeocode", 2)
	})

	t.Run("exhausted retries return sentinel without caching", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockGeocoder := &MockGeocoderRepository{}

		mockCache.On("GetAddress", ctx, 1.0, 2.0).Return(nil, nil)
		mockGeocoder.On("ReverseGeocode", ctx, 1.0, 2.0).Return(nil, errors.New("connection refused"))

		uc := usecase.NewGeocodeUseCase(mockGeocoder, mockCache, geocoderConfig(1), logger)

		info, err := uc.ResolveAddress(ctx, 1.0, 2.0)
		require.NoError(t, err)
		assert.Equal(t, domain.GeocodeFailedAddress, info.Address)
		assert.Equal(t, domain.UnknownCity, info.City)
		mockCache.AssertNotCalled(t, "SetAddress", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("configured backoff base drives retry pacing", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockGeocoder := &MockGeocoderRepository{}

		mockCache.On("GetAddress", ctx, 1.0, 2.0).Return(nil, nil)
		mockGeocoder.On("ReverseGeocode", ctx, 1.0, 2.0).Return(nil, errors.New("timeout"))

		uc := usecase.NewGeocodeUseCase(mockGeocoder, mockCache, geocoderConfig(3), logger)

		start := time.Now()
		info, err := uc.ResolveAddress(ctx, 1.0, 2.0)
		require.NoError(t, err)

		assert.Equal(t, domain.GeocodeFailedAddress, info.Address)
		assert.Less(t, time.Since(start), 500*time.Millisecond)
		mockGeocoder.AssertNumberOfCalls(t, "ReverseGeocode", 3)
	})

	t.Run("cancelled context aborts before provider call", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockGeocoder := &MockGeocoderRepository{}

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		mockCache.On("GetAddress", cancelled, 1.0, 2.0).Return(nil, nil)

		uc := usecase.NewGeocodeUseCase(mockGeocoder, mockCache, geocoderConfig(3), logger)

		_, err := uc.ResolveAddress(cancelled, 1.0, 2.0)
		assert.ErrorIs(t, err, context.Canceled)
		mockGeocoder.AssertNotCalled(t, "ReverseGeocode", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGeocodeUseCase_ResolveBatch(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	mockCache := &MockCacheRepository{}
	mockGeocoder := &MockGeocoderRepository{}

	points := []domain.Point{
		{Lat: 1, Lon: 1},
		{Lat: 2, Lon: 2},
		{Lat: 3, Lon: 3},
	}
	for _, p := range points {
		mockCache.On("GetAddress", ctx, p.Lat, p.Lon).
			Return(&domain.AddressInfo{Address: "cached", City: "Riga"}, nil)
	}

	uc := usecase.NewGeocodeUseCase(mockGeocoder, mockCache, geocoderConfig(3), logger)

	results, err := uc.ResolveBatch(ctx, points)
	require.NoError(t, err)
	assert.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, "Riga", r.City)
	}
}
