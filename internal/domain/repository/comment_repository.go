package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/skatespot-service/internal/domain"
)

// CommentRepository определяет методы для работы с комментариями
type CommentRepository interface {
	// Create сохраняет новый комментарий
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByID возвращает комментарий по ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)

	// GetBySpot возвращает комментарии спота, новые первыми
	GetBySpot(ctx context.Context, spotID uuid.UUID) ([]domain.Comment, error)

	// Delete удаляет комментарий
	Delete(ctx context.Context, id uuid.UUID) error
}
