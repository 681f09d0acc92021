package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/skatespot-service/internal/domain"
)

// ProfileRepository определяет методы для работы с профилями пользователей
type ProfileRepository interface {
	// GetByID возвращает профиль по ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)

	// GetByUsername возвращает профиль по имени пользователя
	GetByUsername(ctx context.Context, username string) (*domain.Profile, error)

	// UpdateBalance изменяет баланс на delta (может быть отрицательным)
	UpdateBalance(ctx context.Context, id uuid.UUID, delta float64) error
}
