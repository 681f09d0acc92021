package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/skatespot-service/internal/domain"
)

// TournamentRepository определяет методы для работы с турнирами
type TournamentRepository interface {
	// GetActiveTypes возвращает активные шаблоны автоматических турниров
	GetActiveTypes(ctx context.Context) ([]*domain.TournamentType, error)

	// CreateTournament сохраняет новый турнир
	CreateTournament(ctx context.Context, t *domain.Tournament) error

	// GetTournamentByID возвращает турнир по ID
	GetTournamentByID(ctx context.Context, id uuid.UUID) (*domain.Tournament, error)

	// GetTournamentByTypeAndWindow ищет турнир шаблона в заданном окне
	GetTournamentByTypeAndWindow(ctx context.Context, typeID uuid.UUID, start, end time.Time) (*domain.Tournament, error)

	// GetOpenTournaments возвращает турниры, принимающие заявки на момент now
	GetOpenTournaments(ctx context.Context, now time.Time) ([]*domain.Tournament, error)

	// CreateSubmission сохраняет заявку с трюком
	CreateSubmission(ctx context.Context, s *domain.TrickSubmission) error

	// GetSubmissionByID возвращает заявку по ID
	GetSubmissionByID(ctx context.Context, id uuid.UUID) (*domain.TrickSubmission, error)

	// GetSubmissions возвращает заявки турнира, опционально только pending
	GetSubmissions(ctx context.Context, tournamentID uuid.UUID, pendingOnly bool) ([]domain.TrickSubmission, error)

	// UpdateSubmissionStatus выставляет статус и очки заявки
	UpdateSubmissionStatus(ctx context.Context, id uuid.UUID, status domain.SubmissionStatus, score int) error
}
