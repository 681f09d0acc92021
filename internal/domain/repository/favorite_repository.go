package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/skatespot-service/internal/domain"
)

// FavoriteRepository определяет методы для работы с избранными товарами
type FavoriteRepository interface {
	// Add добавляет товар в избранное пользователя
	Add(ctx context.Context, userID, itemID uuid.UUID) error

	// Remove убирает товар из избранного пользователя
	Remove(ctx context.Context, userID, itemID uuid.UUID) error

	// Exists проверяет, есть ли товар в избранном пользователя
	Exists(ctx context.Context, userID, itemID uuid.UUID) (bool, error)

	// GetItems возвращает избранные товары пользователя,
	// последние добавленные первыми
	GetItems(ctx context.Context, userID uuid.UUID) ([]*domain.Item, error)
}
