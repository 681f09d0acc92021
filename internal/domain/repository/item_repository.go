package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/skatespot-service/internal/domain"
)

// ItemRepository определяет методы для работы с товарами маркетплейса
type ItemRepository interface {
	// Create сохраняет новый товар
	Create(ctx context.Context, item *domain.Item) error

	// GetByID возвращает товар по ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)

	// GetAll возвращает товары с фильтрами по типу и статусу продажи
	GetAll(ctx context.Context, itemType string, includeSold bool) ([]*domain.Item, error)

	// GetByUser возвращает товары пользователя
	GetByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Item, error)

	// Purchase атомарно списывает средства покупателя, начисляет продавцу
	// и помечает товар проданным. Ошибка, если товар уже продан или
	// средств недостаточно.
	Purchase(ctx context.Context, itemID, buyerID uuid.UUID) error

	// Delete удаляет товар
	Delete(ctx context.Context, id uuid.UUID) error
}
