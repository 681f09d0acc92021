package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/pkg/errors"
)

type itemRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewItemRepository(db *DB) repository.ItemRepository {
	return &itemRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `
		INSERT INTO items (id, user_id, title, description, type, condition, price, image_url, is_sold, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.UserID, item.Title, item.Description,
		item.Type, item.Condition, item.Price, item.ImageURL,
		item.IsSold, item.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create item", zap.String("id", item.ID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query := `
		SELECT id, user_id, title, description, type, condition, price, image_url, is_sold, buyer_id, created_at
		FROM items
		WHERE id = $1
	`

	var item domain.Item
	err := r.db.GetContext(ctx, &item, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrItemNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get item by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &item, nil
}

func (r *itemRepository) GetAll(ctx context.Context, itemType string, includeSold bool) ([]*domain.Item, error) {
	query := `
		SELECT id, user_id, title, description, type, condition, price, image_url, is_sold, buyer_id, created_at
		FROM items
		WHERE 1=1
	`
	args := []interface{}{}

	if itemType != "" && itemType != "all" {
		args = append(args, itemType)
		query += " AND type = $1"
	}
	if !includeSold {
		query += " AND is_sold = false"
	}
	query += " ORDER BY created_at DESC"

	var items []*domain.Item
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		r.logger.Error("Failed to get items", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return items, nil
}

func (r *itemRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Item, error) {
	query := `
		SELECT id, user_id, title, description, type, condition, price, image_url, is_sold, buyer_id, created_at
		FROM items
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var items []*domain.Item
	if err := r.db.SelectContext(ctx, &items, query, userID); err != nil {
		r.logger.Error("Failed to get items by user", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return items, nil
}

// Purchase выполняет покупку одной транзакцией: блокирует строку товара,
// проверяет баланс, переводит средства и помечает товар проданным
func (r *itemRepository) Purchase(ctx context.Context, itemID, buyerID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin purchase tx", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	var item domain.Item
	err = tx.GetContext(ctx, &item, `
		SELECT id, user_id, title, description, type, condition, price, image_url, is_sold, buyer_id, created_at
		FROM items
		WHERE id = $1
		FOR UPDATE
	`, itemID)
	if err == sql.ErrNoRows {
		return errors.ErrItemNotFound
	}
	if err != nil {
		r.logger.Error("Failed to lock item for purchase", zap.String("id", itemID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if item.IsSold {
		return errors.ErrItemSold
	}
	if item.UserID == buyerID {
		return errors.ErrOwnPurchase
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE profiles SET balance = balance - $1
		WHERE id = $2 AND balance >= $1
	`, item.Price, buyerID)
	if err != nil {
		r.logger.Error("Failed to debit buyer", zap.String("buyer_id", buyerID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.ErrInsufficientFunds
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE profiles SET balance = balance + $1 WHERE id = $2
	`, item.Price, item.UserID); err != nil {
		r.logger.Error("Failed to credit seller", zap.String("seller_id", item.UserID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE items SET is_sold = true, buyer_id = $1 WHERE id = $2
	`, buyerID, itemID); err != nil {
		r.logger.Error("Failed to mark item sold", zap.String("id", itemID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit purchase", zap.String("id", itemID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM items WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Failed to delete item", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return errors.ErrItemNotFound
	}

	return nil
}
