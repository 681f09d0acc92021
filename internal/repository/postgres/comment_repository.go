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

type commentRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCommentRepository(db *DB) repository.CommentRepository {
	return &commentRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (id, spot_id, user_id, username, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.SpotID, comment.UserID,
		comment.Username, comment.Content, comment.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create comment", zap.String("spot_id", comment.SpotID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	query := `
		SELECT id, spot_id, user_id, username, content, created_at
		FROM comments
		WHERE id = $1
	`

	var comment domain.Comment
	err := r.db.GetContext(ctx, &comment, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrCommentNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get comment by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &comment, nil
}

func (r *commentRepository) GetBySpot(ctx context.Context, spotID uuid.UUID) ([]domain.Comment, error) {
	query := `
		SELECT id, spot_id, user_id, username, content, created_at
		FROM comments
		WHERE spot_id = $1
		ORDER BY created_at DESC
	`

	var comments []domain.Comment
	if err := r.db.SelectContext(ctx, &comments, query, spotID); err != nil {
		r.logger.Error("Failed to get comments by spot", zap.String("spot_id", spotID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Failed to delete comment", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return errors.ErrCommentNotFound
	}

	return nil
}
