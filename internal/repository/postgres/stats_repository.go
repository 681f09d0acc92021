package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/pkg/errors"
)

type statsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStatsRepository(db *DB) repository.StatsRepository {
	return &statsRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{
		Spots:       domain.SpotStats{ByCategory: make(map[string]int)},
		LastUpdated: time.Now(),
	}

	var spotRows []struct {
		Category   string `db:"category"`
		IsApproved bool   `db:"is_approved"`
		Count      int    `db:"count"`
	}
	err := r.db.SelectContext(ctx, &spotRows, `
		SELECT category, is_approved, COUNT(*) AS count
		FROM spots
		GROUP BY category, is_approved
	`)
	if err != nil {
		r.logger.Error("Failed to count spots", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	for _, row := range spotRows {
		stats.Spots.Total += row.Count
		stats.Spots.ByCategory[row.Category] += row.Count
		if row.IsApproved {
			stats.Spots.Approved += row.Count
		} else {
			stats.Spots.Pending += row.Count
		}
	}

	// Статусы посещаемости зависят от правила минимальной длительности,
	// поэтому считаются в коде, а не в SQL
	var records []domain.AttendanceRecord
	err = r.db.SelectContext(ctx, &records, `
		SELECT id, spot_id, user_id, username, start_time, duration_minutes
		FROM spot_attendances
	`)
	if err != nil {
		r.logger.Error("Failed to load attendance for stats", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	summary := domain.Summarize(records, time.Now())
	stats.Attendance.Active = summary.Active
	stats.Attendance.Scheduled = summary.Scheduled

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_sold) FROM items
	`).Scan(&stats.Market.TotalItems, &stats.Market.SoldItems)
	if err != nil {
		r.logger.Error("Failed to count items", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE start_time <= NOW() AND end_time >= NOW())
		FROM tournaments
	`).Scan(&stats.Tournaments.Total, &stats.Tournaments.Active)
	if err != nil {
		r.logger.Error("Failed to count tournaments", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stats, nil
}
