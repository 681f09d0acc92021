package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/pkg/errors"
)

type tournamentRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTournamentRepository(db *DB) repository.TournamentRepository {
	return &tournamentRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *tournamentRepository) GetActiveTypes(ctx context.Context) ([]*domain.TournamentType, error) {
	query := `
		SELECT id, name, description, frequency, is_active
		FROM tournament_types
		WHERE is_active = true
	`

	var types []*domain.TournamentType
	if err := r.db.SelectContext(ctx, &types, query); err != nil {
		r.logger.Error("Failed to get tournament types", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return types, nil
}

func (r *tournamentRepository) CreateTournament(ctx context.Context, t *domain.Tournament) error {
	query := `
		INSERT INTO tournaments (id, type_id, name, start_time, end_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.TypeID, t.Name, t.StartTime, t.EndTime, t.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create tournament", zap.String("name", t.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *tournamentRepository) GetTournamentByID(ctx context.Context, id uuid.UUID) (*domain.Tournament, error) {
	query := `
		SELECT id, type_id, name, start_time, end_time, created_at
		FROM tournaments
		WHERE id = $1
	`

	var t domain.Tournament
	err := r.db.GetContext(ctx, &t, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTournamentNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get tournament by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &t, nil
}

func (r *tournamentRepository) GetTournamentByTypeAndWindow(ctx context.Context, typeID uuid.UUID, start, end time.Time) (*domain.Tournament, error) {
	query := `
		SELECT id, type_id, name, start_time, end_time, created_at
		FROM tournaments
		WHERE type_id = $1 AND start_time = $2 AND end_time = $3
	`

	var t domain.Tournament
	err := r.db.GetContext(ctx, &t, query, typeID, start, end)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTournamentNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get tournament by window", zap.String("type_id", typeID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &t, nil
}

func (r *tournamentRepository) GetOpenTournaments(ctx context.Context, now time.Time) ([]*domain.Tournament, error) {
	query := `
		SELECT id, type_id, name, start_time, end_time, created_at
		FROM tournaments
		WHERE start_time <= $1 AND end_time >= $1
		ORDER BY start_time
	`

	var tournaments []*domain.Tournament
	if err := r.db.SelectContext(ctx, &tournaments, query, now); err != nil {
		r.logger.Error("Failed to get open tournaments", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return tournaments, nil
}

func (r *tournamentRepository) CreateSubmission(ctx context.Context, s *domain.TrickSubmission) error {
	query := `
		INSERT INTO trick_submissions (id, tournament_id, user_id, username, trick_name, video_url, status, score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.TournamentID, s.UserID, s.Username,
		s.TrickName, s.VideoURL, s.Status, s.Score, s.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create submission", zap.String("tournament_id", s.TournamentID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *tournamentRepository) GetSubmissionByID(ctx context.Context, id uuid.UUID) (*domain.TrickSubmission, error) {
	query := `
		SELECT id, tournament_id, user_id, username, trick_name, video_url, status, score, created_at
		FROM trick_submissions
		WHERE id = $1
	`

	var s domain.TrickSubmission
	err := r.db.GetContext(ctx, &s, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrSubmissionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get submission by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &s, nil
}

func (r *tournamentRepository) GetSubmissions(ctx context.Context, tournamentID uuid.UUID, pendingOnly bool) ([]domain.TrickSubmission, error) {
	query := `
		SELECT id, tournament_id, user_id, username, trick_name, video_url, status, score, created_at
		FROM trick_submissions
		WHERE tournament_id = $1
	`
	if pendingOnly {
		query += " AND status = 'pending'"
	}
	query += " ORDER BY created_at"

	var submissions []domain.TrickSubmission
	if err := r.db.SelectContext(ctx, &submissions, query, tournamentID); err != nil {
		r.logger.Error("Failed to get submissions", zap.String("tournament_id", tournamentID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return submissions, nil
}

func (r *tournamentRepository) UpdateSubmissionStatus(ctx context.Context, id uuid.UUID, status domain.SubmissionStatus, score int) error {
	query := `
		UPDATE trick_submissions SET status = $1, score = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, status, score, id)
	if err != nil {
		r.logger.Error("Failed to update submission status", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return errors.ErrSubmissionNotFound
	}

	return nil
}
