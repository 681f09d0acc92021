package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/delivery/http/middleware"
	"github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/pkg/utils"
	"github.com/skatespot-service/internal/pkg/validator"
	"github.com/skatespot-service/internal/usecase"
	"github.com/skatespot-service/internal/usecase/dto"
)

// TournamentHandler - обработчик турниров и заявок с трюками
type TournamentHandler struct {
	tournamentUC *usecase.TournamentUseCase
	logger       *zap.Logger
}

// NewTournamentHandler создает новый экземпляр TournamentHandler
func NewTournamentHandler(tournamentUC *usecase.TournamentUseCase, logger *zap.Logger) *TournamentHandler {
	return &TournamentHandler{
		tournamentUC: tournamentUC,
		logger:       logger,
	}
}

// GetOpen godoc
// @Summary Открытые турниры
// @Description Возвращает турниры, принимающие заявки прямо сейчас
// @Tags Tournaments
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Tournament}
// @Router /api/v1/tournaments [get]
func (h *TournamentHandler) GetOpen(c *fiber.Ctx) error {
	tournaments, err := h.tournamentUC.GetOpen(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, tournaments, &utils.Meta{Total: len(tournaments)})
}

// SubmitTrick godoc
// @Summary Подать трюк на турнир
// @Description Создаёт заявку с трюком. Заявка попадает на модерацию.
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param id path string true "ID турнира"
// @Param request body dto.SubmitTrickRequest true "Трюк и ссылка на видео"
// @Success 200 {object} utils.SuccessResponse{data=domain.TrickSubmission}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/tournaments/{id}/submissions [post]
func (h *TournamentHandler) SubmitTrick(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrForbidden)
	}

	tournamentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.SubmitTrickRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	submission, err := h.tournamentUC.SubmitTrick(c.Context(), tournamentID, userID, middleware.Username(c), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, submission, nil)
}

// ReviewSubmission godoc
// @Summary Оценить заявку
// @Description Одобряет заявку с баллами или отклоняет её. Только для админов.
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param id path string true "ID заявки"
// @Param request body dto.ReviewSubmissionRequest true "Решение и баллы"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/submissions/{id}/review [post]
func (h *TournamentHandler) ReviewSubmission(c *fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.ReviewSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.tournamentUC.ReviewSubmission(c.Context(), submissionID, viewerFromCtx(c), &req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"reviewed": true}, nil)
}

// GetLeaderboard godoc
// @Summary Таблица лидеров
// @Description Возвращает лидеров турнира по сумме баллов одобренных заявок
// @Tags Tournaments
// @Produce json
// @Param id path string true "ID турнира"
// @Success 200 {object} utils.SuccessResponse{data=dto.LeaderboardResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/tournaments/{id}/leaderboard [get]
func (h *TournamentHandler) GetLeaderboard(c *fiber.Ctx) error {
	tournamentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	resp, err := h.tournamentUC.GetLeaderboard(c.Context(), tournamentID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// GetPendingSubmissions godoc
// @Summary Заявки на модерации
// @Description Возвращает неоценённые заявки турнира. Только для админов.
// @Tags Tournaments
// @Produce json
// @Param id path string true "ID турнира"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.TrickSubmission}
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/v1/tournaments/{id}/submissions/pending [get]
func (h *TournamentHandler) GetPendingSubmissions(c *fiber.Ctx) error {
	tournamentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	submissions, err := h.tournamentUC.GetPendingSubmissions(c.Context(), tournamentID, viewerFromCtx(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, submissions, &utils.Meta{Total: len(submissions)})
}
