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

func newMarketUseCase(items *MockItemRepository, profiles *MockProfileRepository, favorites *MockFavoriteRepository) *usecase.MarketUseCase {
	logger := zap.NewNop()
	m := mailer.New(&config.SMTPConfig{Enabled: false}, logger)
	return usecase.NewMarketUseCase(items, profiles, favorites, &MockStorageRepository{}, m, logger)
}

func TestMarketUseCase_CreateItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates valid item", func(t *testing.T) {
		mockItems := &MockItemRepository{}
		mockItems.On("Create", ctx, mock.AnythingOfType("*domain.Item")).Return(nil)

		uc := newMarketUseCase(mockItems, &MockProfileRepository{}, &MockFavoriteRepository{})

		item, err := uc.CreateItem(ctx, userID, &dto.CreateItemRequest{
			Title:     "8.25 deck",
			Type:      "board",
			Condition: "like_new",
			Price:     45,
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, domain.ItemBoard, item.Type)
		assert.False(t, item.IsSold)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		uc := newMarketUseCase(&MockItemRepository{}, &MockProfileRepository{}, &MockFavoriteRepository{})

		_, err := uc.CreateItem(ctx, userID, &dto.CreateItemRequest{
			Title:     "Surfboard",
			Type:      "surfboard",
			Condition: "good",
			Price:     100,
		}, nil)

		assert.Error(t, err)
	})
}

func TestMarketUseCase_Purchase(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()
	itemID := uuid.New()

	sold := &domain.Item{
		ID:      itemID,
		UserID:  sellerID,
		Title:   "8.25 deck",
		Price:   45,
		IsSold:  true,
		BuyerID: &buyerID,
	}

	t.Run("successful purchase returns item", func(t *testing.T) {
		mockItems := &MockItemRepository{}
		mockProfiles := &MockProfileRepository{}

		mockItems.On("Purchase", ctx, itemID, buyerID).Return(nil)
		mockItems.On("GetByID", ctx, itemID).Return(sold, nil)
		mockProfiles.On("GetByID", ctx, buyerID).
			Return(&domain.Profile{ID: buyerID, Email: "buyer@example.com"}, nil)
		mockProfiles.On("GetByID", ctx, sellerID).
			Return(&domain.Profile{ID: sellerID, Email: "seller@example.com"}, nil)

		uc := newMarketUseCase(mockItems, mockProfiles, &MockFavoriteRepository{})

		item, err := uc.Purchase(ctx, itemID, buyerID)
		require.NoError(t, err)
		assert.True(t, item.IsSold)
		assert.Equal(t, buyerID, *item.BuyerID)
	})

	t.Run("repository failures pass through", func(t *testing.T) {
		mockItems := &MockItemRepository{}
		mockItems.On("Purchase", ctx, itemID, buyerID).Return(errors.ErrInsufficientFunds)

		uc := newMarketUseCase(mockItems, &MockProfileRepository{}, &MockFavoriteRepository{})

		_, err := uc.Purchase(ctx, itemID, buyerID)
		assert.ErrorIs(t, err, errors.ErrInsufficientFunds)
	})
}

func TestMarketUseCase_ToggleFavorite(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	item := &domain.Item{ID: itemID, Title: "8.25 deck"}

	t.Run("adds when not yet favorite", func(t *testing.T) {
		mockItems := &MockItemRepository{}
		mockFavorites := &MockFavoriteRepository{}

		mockItems.On("GetByID", ctx, itemID).Return(item, nil)
		mockFavorites.On("Exists", ctx, userID, itemID).Return(false, nil)
		mockFavorites.On("Add", ctx, userID, itemID).Return(nil)

		uc := newMarketUseCase(mockItems, &MockProfileRepository{}, mockFavorites)

		favorite, err := uc.ToggleFavorite(ctx, itemID, userID)
		require.NoError(t, err)
		assert.True(t, favorite)
		mockFavorites.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("removes when already favorite", func(t *testing.T) {
		mockItems := &MockItemRepository{}
		mockFavorites := &MockFavoriteRepository{}

		mockItems.On("GetByID", ctx, itemID).Return(item, nil)
		mockFavorites.On("Exists", ctx, userID, itemID).Return(true, nil)
		mockFavorites.On("Remove", ctx, userID, itemID).Return(nil)

		uc := newMarketUseCase(mockItems, &MockProfileRepository{}, mockFavorites)

		favorite, err := uc.ToggleFavorite(ctx, itemID, userID)
		require.NoError(t, err)
		assert.False(t, favorite)
		mockFavorites.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown item fails", func(t *testing.T) {
		mockItems := &MockItemRepository{}
		mockFavorites := &MockFavoriteRepository{}

		mockItems.On("GetByID", ctx, itemID).Return(nil, errors.ErrItemNotFound)

		uc := newMarketUseCase(mockItems, &MockProfileRepository{}, mockFavorites)

		_, err := uc.ToggleFavorite(ctx, itemID, userID)
		assert.ErrorIs(t, err, errors.ErrItemNotFound)
		mockFavorites.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMarketUseCase_GetFavorites(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	mockFavorites := &MockFavoriteRepository{}
	mockFavorites.On("GetItems", ctx, userID).Return([]*domain.Item{
		{ID: uuid.New(), Title: "54mm wheels"},
		{ID: uuid.New(), Title: "Indy trucks"},
	}, nil)

	uc := newMarketUseCase(&MockItemRepository{}, &MockProfileRepository{}, mockFavorites)

	items, err := uc.GetFavorites(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "54mm wheels", items[0].Title)
}

func TestMarketUseCase_DeleteItem(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()
	itemID := uuid.New()

	item := &domain.Item{ID: itemID, UserID: owner}

	t.Run("owner deletes unsold item", func(t *testing.T) {
		mockItems := &MockItemRepository{}
		mockItems.On("GetByID", ctx, itemID).Return(item, nil)
		mockItems.On("Delete", ctx, itemID).Return(nil)

		uc := newMarketUseCase(mockItems, &MockProfileRepository{}, &MockFavoriteRepository{})
		assert.NoError(t, uc.DeleteItem(ctx, itemID, owner, false))
	})

	t.Run("stranger forbidden", func(t *testing.T) {
		mockItems := &MockItemRepository{}
		mockItems.On("GetByID", ctx, itemID).Return(item, nil)

		uc := newMarketUseCase(mockItems, &MockProfileRepository{}, &MockFavoriteRepository{})
		assert.ErrorIs(t, uc.DeleteItem(ctx, itemID, stranger, false), errors.ErrForbidden)
	})

	t.Run("sold item cannot be delisted", func(t *testing.T) {
		mockItems := &MockItemRepository{}
		soldItem := &domain.Item{ID: itemID, UserID: owner, IsSold: true}
		mockItems.On("GetByID", ctx, itemID).Return(soldItem, nil)

		uc := newMarketUseCase(mockItems, &MockProfileRepository{}, &MockFavoriteRepository{})
		assert.ErrorIs(t, uc.DeleteItem(ctx, itemID, owner, false), errors.ErrItemSold)
	})
}
