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

type profileRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewProfileRepository(db *DB) repository.ProfileRepository {
	return &profileRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT id, username, email, is_admin, balance, created_at
		FROM profiles
		WHERE id = $1
	`

	var profile domain.Profile
	err := r.db.GetContext(ctx, &profile, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrProfileNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get profile by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &profile, nil
}

func (r *profileRepository) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	query := `
		SELECT id, username, email, is_admin, balance, created_at
		FROM profiles
		WHERE username = $1
	`

	var profile domain.Profile
	err := r.db.GetContext(ctx, &profile, query, username)
	if err == sql.ErrNoRows {
		return nil, errors.ErrProfileNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get profile by username", zap.String("username", username), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &profile, nil
}

func (r *profileRepository) UpdateBalance(ctx context.Context, id uuid.UUID, delta float64) error {
	query := `
		UPDATE profiles SET balance = balance + $1
		WHERE id = $2 AND balance + $1 >= 0
	`

	result, err := r.db.ExecContext(ctx, query, delta, id)
	if err != nil {
		r.logger.Error("Failed to update balance", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return errors.ErrInsufficientFunds
	}

	return nil
}
