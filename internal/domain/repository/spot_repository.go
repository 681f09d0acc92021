package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/skatespot-service/internal/domain"
)

// SpotRepository определяет методы для работы со спотами
type SpotRepository interface {
	// Create сохраняет новый спот
	Create(ctx context.Context, spot *domain.Spot) error

	// GetByID возвращает спот по ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Spot, error)

	// GetAll возвращает все споты, опционально включая неодобренные
	GetAll(ctx context.Context, includeUnapproved bool) ([]*domain.Spot, error)

	// GetByCategories возвращает споты перечисленных категорий
	GetByCategories(ctx context.Context, categories []string, includeUnapproved bool) ([]*domain.Spot, error)

	// GetInBoundingBox возвращает споты внутри прямоугольника координат
	GetInBoundingBox(ctx context.Context, minLat, minLon, maxLat, maxLon float64) ([]*domain.Spot, error)

	// Approve помечает спот одобренным
	Approve(ctx context.Context, id uuid.UUID) error

	// Delete удаляет спот
	Delete(ctx context.Context, id uuid.UUID) error
}
