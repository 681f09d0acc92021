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

// AttendanceHandler - обработчик отметок "я на споте"
type AttendanceHandler struct {
	attendanceUC *usecase.AttendanceUseCase
	logger       *zap.Logger
}

// NewAttendanceHandler создает новый экземпляр AttendanceHandler
func NewAttendanceHandler(attendanceUC *usecase.AttendanceUseCase, logger *zap.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceUC: attendanceUC,
		logger:       logger,
	}
}

// Attend godoc
// @Summary Отметиться на споте
// @Description Создаёт запись посещения: с какого времени и на сколько минут пользователь на споте
// @Tags Attendance
// @Accept json
// @Produce json
// @Param id path string true "ID спота"
// @Param request body dto.AttendRequest true "Время начала и длительность"
// @Success 200 {object} utils.SuccessResponse{data=domain.AttendanceRecord}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id}/attend [post]
func (h *AttendanceHandler) Attend(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrForbidden)
	}

	spotID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.AttendRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	record, err := h.attendanceUC.Attend(c.Context(), spotID, userID, middleware.Username(c), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, record, nil)
}

// Leave godoc
// @Summary Сняться со спота
// @Description Удаляет отметку пользователя со спота
// @Tags Attendance
// @Produce json
// @Param id path string true "ID спота"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id}/attend [delete]
func (h *AttendanceHandler) Leave(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrForbidden)
	}

	spotID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.attendanceUC.Leave(c.Context(), spotID, userID); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"left": true}, nil)
}

// GetForSpot godoc
// @Summary Посещаемость спота
// @Description Возвращает живые записи посещаемости спота и сводку (активные, запланированные)
// @Tags Attendance
// @Produce json
// @Param id path string true "ID спота"
// @Success 200 {object} utils.SuccessResponse{data=dto.AttendanceResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id}/attendance [get]
func (h *AttendanceHandler) GetForSpot(c *fiber.Ctx) error {
	spotID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	resp, err := h.attendanceUC.GetForSpot(c.Context(), spotID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}
