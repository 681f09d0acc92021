package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/pkg/errors"
)

type spotRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSpotRepository(db *DB) repository.SpotRepository {
	return &spotRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *spotRepository) Create(ctx context.Context, spot *domain.Spot) error {
	query := `
		INSERT INTO spots (id, user_id, title, category, latitude, longitude, image_url, is_approved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		spot.ID, spot.UserID, spot.Title, spot.Category,
		spot.Latitude, spot.Longitude, spot.ImageURL,
		spot.IsApproved, spot.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create spot", zap.String("id", spot.ID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *spotRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Spot, error) {
	query := `
		SELECT id, user_id, title, category, latitude, longitude, image_url, is_approved, created_at
		FROM spots
		WHERE id = $1
	`

	var spot domain.Spot
	err := r.db.GetContext(ctx, &spot, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrSpotNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get spot by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &spot, nil
}

func (r *spotRepository) GetAll(ctx context.Context, includeUnapproved bool) ([]*domain.Spot, error) {
	query := `
		SELECT id, user_id, title, category, latitude, longitude, image_url, is_approved, created_at
		FROM spots
	`
	if !includeUnapproved {
		query += " WHERE is_approved = true"
	}
	query += " ORDER BY created_at DESC"

	var spots []*domain.Spot
	if err := r.db.SelectContext(ctx, &spots, query); err != nil {
		r.logger.Error("Failed to get spots", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return spots, nil
}

func (r *spotRepository) GetByCategories(ctx context.Context, categories []string, includeUnapproved bool) ([]*domain.Spot, error) {
	query := `
		SELECT id, user_id, title, category, latitude, longitude, image_url, is_approved, created_at
		FROM spots
		WHERE category = ANY($1)
	`
	if !includeUnapproved {
		query += " AND is_approved = true"
	}
	query += " ORDER BY created_at DESC"

	var spots []*domain.Spot
	if err := r.db.SelectContext(ctx, &spots, query, pq.Array(categories)); err != nil {
		r.logger.Error("Failed to get spots by categories", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return spots, nil
}

// GetInBoundingBox используется проверкой минимальной дистанции между спотами:
// прямоугольник сужает выборку, точное расстояние считается в коде.
func (r *spotRepository) GetInBoundingBox(ctx context.Context, minLat, minLon, maxLat, maxLon float64) ([]*domain.Spot, error) {
	query := `
		SELECT id, user_id, title, category, latitude, longitude, image_url, is_approved, created_at
		FROM spots
		WHERE latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4
	`

	var spots []*domain.Spot
	if err := r.db.SelectContext(ctx, &spots, query, minLat, maxLat, minLon, maxLon); err != nil {
		r.logger.Error("Failed to get spots in bounding box", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return spots, nil
}

func (r *spotRepository) Approve(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "UPDATE spots SET is_approved = true WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Failed to approve spot", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return errors.ErrSpotNotFound
	}

	return nil
}

func (r *spotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM spots WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Failed to delete spot", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return errors.ErrSpotNotFound
	}

	return nil
}
