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

type attendanceRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAttendanceRepository(db *DB) repository.AttendanceRepository {
	return &attendanceRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *attendanceRepository) Create(ctx context.Context, record *domain.AttendanceRecord) error {
	query := `
		INSERT INTO spot_attendances (id, spot_id, user_id, username, start_time, duration_minutes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.SpotID, record.UserID,
		record.Username, record.StartTime, record.DurationMinutes,
	)
	if err != nil {
		r.logger.Error("Failed to create attendance", zap.String("spot_id", record.SpotID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AttendanceRecord, error) {
	query := `
		SELECT id, spot_id, user_id, username, start_time, duration_minutes
		FROM spot_attendances
		WHERE id = $1
	`

	var record domain.AttendanceRecord
	err := r.db.GetContext(ctx, &record, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrAttendanceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get attendance by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &record, nil
}

func (r *attendanceRepository) GetBySpot(ctx context.Context, spotID uuid.UUID) ([]domain.AttendanceRecord, error) {
	query := `
		SELECT id, spot_id, user_id, username, start_time, duration_minutes
		FROM spot_attendances
		WHERE spot_id = $1
		ORDER BY start_time
	`

	var records []domain.AttendanceRecord
	if err := r.db.SelectContext(ctx, &records, query, spotID); err != nil {
		r.logger.Error("Failed to get attendance by spot", zap.String("spot_id", spotID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return records, nil
}

func (r *attendanceRepository) GetBySpots(ctx context.Context, spotIDs []uuid.UUID) (map[uuid.UUID][]domain.AttendanceRecord, error) {
	if len(spotIDs) == 0 {
		return map[uuid.UUID][]domain.AttendanceRecord{}, nil
	}

	ids := make([]string, len(spotIDs))
	for i, id := range spotIDs {
		ids[i] = id.String()
	}

	query := `
		SELECT id, spot_id, user_id, username, start_time, duration_minutes
		FROM spot_attendances
		WHERE spot_id = ANY($1)
		ORDER BY start_time
	`

	var records []domain.AttendanceRecord
	if err := r.db.SelectContext(ctx, &records, query, pq.Array(ids)); err != nil {
		r.logger.Error("Failed to get attendance by spots", zap.Int("spots", len(spotIDs)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	result := make(map[uuid.UUID][]domain.AttendanceRecord, len(spotIDs))
	for _, rec := range records {
		result[rec.SpotID] = append(result[rec.SpotID], rec)
	}

	return result, nil
}

func (r *attendanceRepository) GetByUserAndSpot(ctx context.Context, userID, spotID uuid.UUID) (*domain.AttendanceRecord, error) {
	query := `
		SELECT id, spot_id, user_id, username, start_time, duration_minutes
		FROM spot_attendances
		WHERE user_id = $1 AND spot_id = $2
		LIMIT 1
	`

	var record domain.AttendanceRecord
	err := r.db.GetContext(ctx, &record, query, userID, spotID)
	if err == sql.ErrNoRows {
		return nil, errors.ErrAttendanceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get attendance by user and spot", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &record, nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM spot_attendances WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Failed to delete attendance", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return errors.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}

	_, err := r.db.ExecContext(ctx, "DELETE FROM spot_attendances WHERE id = ANY($1)", pq.Array(strIDs))
	if err != nil {
		r.logger.Error("Failed to delete attendance batch", zap.Int("count", len(ids)), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
