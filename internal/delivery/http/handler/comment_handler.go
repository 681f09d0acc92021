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

// CommentHandler - обработчик комментариев к спотам
type CommentHandler struct {
	commentUC *usecase.CommentUseCase
	logger    *zap.Logger
}

// NewCommentHandler создает новый экземпляр CommentHandler
func NewCommentHandler(commentUC *usecase.CommentUseCase, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{
		commentUC: commentUC,
		logger:    logger,
	}
}

// Add godoc
// @Summary Добавить комментарий
// @Description Добавляет комментарий к одобренному споту
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path string true "ID спота"
// @Param request body dto.CreateCommentRequest true "Текст комментария"
// @Success 200 {object} utils.SuccessResponse{data=domain.Comment}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id}/comments [post]
func (h *CommentHandler) Add(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrForbidden)
	}

	spotID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	comment, err := h.commentUC.Add(c.Context(), spotID, userID, middleware.Username(c), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, comment, nil)
}

// GetForSpot godoc
// @Summary Комментарии спота
// @Description Возвращает комментарии спота, новые первыми
// @Tags Comments
// @Produce json
// @Param id path string true "ID спота"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Comment}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id}/comments [get]
func (h *CommentHandler) GetForSpot(c *fiber.Ctx) error {
	spotID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	comments, err := h.commentUC.GetForSpot(c.Context(), spotID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, comments, &utils.Meta{Total: len(comments)})
}

// Delete godoc
// @Summary Удалить комментарий
// @Description Удаляет комментарий. Разрешено автору и админам.
// @Tags Comments
// @Produce json
// @Param id path string true "ID комментария"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/comments/{id} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrForbidden)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.commentUC.Delete(c.Context(), id, userID, middleware.IsAdmin(c)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
