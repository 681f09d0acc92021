package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/delivery/http/middleware"
	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/pkg/utils"
	"github.com/skatespot-service/internal/pkg/validator"
	"github.com/skatespot-service/internal/usecase"
	"github.com/skatespot-service/internal/usecase/dto"
)

// SpotHandler - обработчик запросов для спотов
type SpotHandler struct {
	spotUC *usecase.SpotUseCase
	logger *zap.Logger
}

// NewSpotHandler создает новый экземпляр SpotHandler
func NewSpotHandler(spotUC *usecase.SpotUseCase, logger *zap.Logger) *SpotHandler {
	return &SpotHandler{
		spotUC: spotUC,
		logger: logger,
	}
}

func viewerFromCtx(c *fiber.Ctx) domain.Viewer {
	viewer := domain.Viewer{IsAdmin: middleware.IsAdmin(c)}

	lat := c.QueryFloat("lat", 361)
	lon := c.QueryFloat("lon", 361)
	if lat <= 90 && lat >= -90 && lon <= 180 && lon >= -180 {
		viewer.Location = &domain.Point{Lat: lat, Lon: lon}
	}

	return viewer
}

// Create godoc
// @Summary Добавить спот
// @Description Создаёт новый спот. Спот ближе минимальной дистанции к существующему отклоняется. Новый спот ждёт одобрения модератора.
// @Tags Spots
// @Accept mpfd
// @Produce json
// @Param title formData string true "Название спота"
// @Param category formData string true "Категория (skatepark, rail, stairs, ledge, flatbar, park, box)"
// @Param latitude formData number true "Широта"
// @Param longitude formData number true "Долгота"
// @Param image formData file false "Фото спота"
// @Success 200 {object} utils.SuccessResponse{data=domain.Spot}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/spots [post]
func (h *SpotHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrForbidden)
	}

	var req dto.CreateSpotRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	var image *usecase.SpotImage
	if file, err := c.FormFile("image"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			h.logger.Warn("Failed to open uploaded image", zap.Error(err))
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
		defer src.Close()

		image = &usecase.SpotImage{
			Reader:      src,
			Size:        file.Size,
			ContentType: file.Header.Get("Content-Type"),
		}
	}

	spot, err := h.spotUC.Create(c.Context(), userID, &req, image)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spot, nil)
}

// GetByID godoc
// @Summary Получить спот
// @Description Возвращает спот с адресом, городом и дистанцией до зрителя (если переданы lat/lon)
// @Tags Spots
// @Produce json
// @Param id path string true "ID спота"
// @Param lat query number false "Широта зрителя"
// @Param lon query number false "Долгота зрителя"
// @Success 200 {object} utils.SuccessResponse{data=dto.SpotResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id} [get]
func (h *SpotHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	resp, err := h.spotUC.GetByID(c.Context(), id, viewerFromCtx(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// Approve godoc
// @Summary Одобрить спот
// @Description Помечает спот одобренным. Только для админов.
// @Tags Spots
// @Produce json
// @Param id path string true "ID спота"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id}/approve [post]
func (h *SpotHandler) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.spotUC.Approve(c.Context(), id, viewerFromCtx(c)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"approved": true}, nil)
}

// Delete godoc
// @Summary Удалить спот
// @Description Удаляет спот. Разрешено автору и админам.
// @Tags Spots
// @Produce json
// @Param id path string true "ID спота"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id} [delete]
func (h *SpotHandler) Delete(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrForbidden)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.spotUC.Delete(c.Context(), id, userID, middleware.IsAdmin(c)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// GetPending godoc
// @Summary Споты на модерации
// @Description Возвращает неодобренные споты. Только для админов.
// @Tags Spots
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Spot}
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/v1/spots/pending [get]
func (h *SpotHandler) GetPending(c *fiber.Ctx) error {
	pending, err := h.spotUC.GetPending(c.Context(), viewerFromCtx(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, pending, &utils.Meta{Total: len(pending)})
}

// GetCategories godoc
// @Summary Категории спотов
// @Description Возвращает список всех категорий спотов
// @Tags Spots
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]string}
// @Router /api/v1/spots/categories [get]
func (h *SpotHandler) GetCategories(c *fiber.Ctx) error {
	return utils.SendSuccess(c, domain.SpotCategories(), nil)
}
