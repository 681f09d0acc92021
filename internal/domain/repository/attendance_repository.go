package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/skatespot-service/internal/domain"
)

// AttendanceRepository определяет методы для работы с записями посещаемости
type AttendanceRepository interface {
	// Create сохраняет новую запись посещаемости
	Create(ctx context.Context, record *domain.AttendanceRecord) error

	// GetByID возвращает запись по ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AttendanceRecord, error)

	// GetBySpot возвращает все записи по споту
	GetBySpot(ctx context.Context, spotID uuid.UUID) ([]domain.AttendanceRecord, error)

	// GetBySpots возвращает записи сразу по нескольким спотам одной выборкой
	GetBySpots(ctx context.Context, spotIDs []uuid.UUID) (map[uuid.UUID][]domain.AttendanceRecord, error)

	// GetByUserAndSpot возвращает запись пользователя на споте, если есть
	GetByUserAndSpot(ctx context.Context, userID, spotID uuid.UUID) (*domain.AttendanceRecord, error)

	// Delete удаляет запись
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteBatch удаляет пачку записей одним запросом
	DeleteBatch(ctx context.Context, ids []uuid.UUID) error
}
