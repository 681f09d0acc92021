package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/pkg/errors"
)

type favoriteRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFavoriteRepository(db *DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *favoriteRepository) Add(ctx context.Context, userID, itemID uuid.UUID) error {
	query := `
		INSERT INTO favorites (user_id, item_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, item_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, userID, itemID); err != nil {
		r.logger.Error("Failed to add favorite",
			zap.String("user_id", userID.String()),
			zap.String("item_id", itemID.String()),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	query := "DELETE FROM favorites WHERE user_id = $1 AND item_id = $2"

	if _, err := r.db.ExecContext(ctx, query, userID, itemID); err != nil {
		r.logger.Error("Failed to remove favorite",
			zap.String("user_id", userID.String()),
			zap.String("item_id", itemID.String()),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	query := "SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND item_id = $2)"

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, itemID); err != nil {
		r.logger.Error("Failed to check favorite",
			zap.String("user_id", userID.String()),
			zap.String("item_id", itemID.String()),
			zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	return exists, nil
}

func (r *favoriteRepository) GetItems(ctx context.Context, userID uuid.UUID) ([]*domain.Item, error) {
	query := `
		SELECT i.id, i.user_id, i.title, i.description, i.type, i.condition,
		       i.price, i.image_url, i.is_sold, i.buyer_id, i.created_at
		FROM favorites f
		JOIN items i ON i.id = f.item_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	var items []*domain.Item
	if err := r.db.SelectContext(ctx, &items, query, userID); err != nil {
		r.logger.Error("Failed to get favorite items",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return items, nil
}
