package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/usecase/dto"
)

// TournamentUseCase обрабатывает турниры и заявки с трюками
type TournamentUseCase struct {
	tournamentRepo repository.TournamentRepository
	logger         *zap.Logger
}

// NewTournamentUseCase создает новый экземпляр TournamentUseCase
func NewTournamentUseCase(
	tournamentRepo repository.TournamentRepository,
	logger *zap.Logger,
) *TournamentUseCase {
	return &TournamentUseCase{
		tournamentRepo: tournamentRepo,
		logger:         logger,
	}
}

// EnsureAutomated создаёт турниры для текущих окон всех активных шаблонов.
// Идемпотентна: повторный вызов в том же окне ничего не создаёт.
func (uc *TournamentUseCase) EnsureAutomated(ctx context.Context, now time.Time) (int, error) {
	types, err := uc.tournamentRepo.GetActiveTypes(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, tt := range types {
		start, end := domain.FrequencyWindow(tt.Frequency, now)

		existing, err := uc.tournamentRepo.GetTournamentByTypeAndWindow(ctx, tt.ID, start, end)
		if err != nil && err != errors.ErrTournamentNotFound {
			return created, err
		}
		if existing != nil {
			continue
		}

		t := &domain.Tournament{
			ID:        uuid.New(),
			TypeID:    tt.ID,
			Name:      fmt.Sprintf("%s (%s)", tt.Name, start.Format("2006-01-02")),
			StartTime: start,
			EndTime:   end,
			CreatedAt: now,
		}

		if err := uc.tournamentRepo.CreateTournament(ctx, t); err != nil {
			return created, err
		}
		created++

		uc.logger.Info("Tournament created",
			zap.String("name", t.Name),
			zap.String("frequency", string(tt.Frequency)))
	}

	return created, nil
}

// GetOpen возвращает турниры, принимающие заявки
func (uc *TournamentUseCase) GetOpen(ctx context.Context) ([]*domain.Tournament, error) {
	return uc.tournamentRepo.GetOpenTournaments(ctx, time.Now())
}

// SubmitTrick подаёт заявку с трюком на открытый турнир
func (uc *TournamentUseCase) SubmitTrick(ctx context.Context, tournamentID, userID uuid.UUID, username string, req *dto.SubmitTrickRequest) (*domain.TrickSubmission, error) {
	t, err := uc.tournamentRepo.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if !t.IsOpen(now) {
		return nil, errors.ErrTournamentClosed
	}

	submission := &domain.TrickSubmission{
		ID:           uuid.New(),
		TournamentID: tournamentID,
		UserID:       userID,
		Username:     username,
		TrickName:    req.TrickName,
		VideoURL:     req.VideoURL,
		Status:       domain.SubmissionPending,
		CreatedAt:    now,
	}

	if err := uc.tournamentRepo.CreateSubmission(ctx, submission); err != nil {
		return nil, err
	}

	uc.logger.Info("Trick submitted",
		zap.String("tournament_id", tournamentID.String()),
		zap.String("trick", req.TrickName))

	return submission, nil
}

// ReviewSubmission одобряет или отклоняет заявку (только для админов)
func (uc *TournamentUseCase) ReviewSubmission(ctx context.Context, submissionID uuid.UUID, viewer domain.Viewer, req *dto.ReviewSubmissionRequest) error {
	if !viewer.IsAdmin {
		return errors.ErrForbidden
	}

	submission, err := uc.tournamentRepo.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		return err
	}
	if submission.Status != domain.SubmissionPending {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"submission": "already reviewed",
		})
	}

	status := domain.SubmissionRejected
	score := 0
	if req.Approve {
		status = domain.SubmissionApproved
		score = req.Score
	}

	if err := uc.tournamentRepo.UpdateSubmissionStatus(ctx, submissionID, status, score); err != nil {
		return err
	}

	uc.logger.Info("Submission reviewed",
		zap.String("id", submissionID.String()),
		zap.String("status", string(status)),
		zap.Int("score", score))

	return nil
}

// GetLeaderboard возвращает таблицу лидеров турнира по одобренным заявкам
func (uc *TournamentUseCase) GetLeaderboard(ctx context.Context, tournamentID uuid.UUID) (*dto.LeaderboardResponse, error) {
	t, err := uc.tournamentRepo.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	submissions, err := uc.tournamentRepo.GetSubmissions(ctx, tournamentID, false)
	if err != nil {
		return nil, err
	}

	return &dto.LeaderboardResponse{
		Tournament: *t,
		Entries:    domain.Leaderboard(submissions),
	}, nil
}

// GetPendingSubmissions возвращает заявки на модерацию (только для админов)
func (uc *TournamentUseCase) GetPendingSubmissions(ctx context.Context, tournamentID uuid.UUID, viewer domain.Viewer) ([]domain.TrickSubmission, error) {
	if !viewer.IsAdmin {
		return nil, errors.ErrForbidden
	}
	return uc.tournamentRepo.GetSubmissions(ctx, tournamentID, true)
}
