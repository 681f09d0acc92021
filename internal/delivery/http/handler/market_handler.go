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

// MarketHandler - обработчик маркетплейса снаряжения
type MarketHandler struct {
	marketUC *usecase.MarketUseCase
	logger   *zap.Logger
}

// NewMarketHandler создает новый экземпляр MarketHandler
func NewMarketHandler(marketUC *usecase.MarketUseCase, logger *zap.Logger) *MarketHandler {
	return &MarketHandler{
		marketUC: marketUC,
		logger:   logger,
	}
}

// CreateItem godoc
// @Summary Выставить товар
// @Description Выставляет снаряжение на продажу. Фото опционально.
// @Tags Market
// @Accept mpfd
// @Produce json
// @Param title formData string true "Название"
// @Param description formData string false "Описание"
// @Param type formData string true "Тип снаряжения"
// @Param condition formData string true "Состояние"
// @Param price formData number true "Цена"
// @Param image formData file false "Фото товара"
// @Success 200 {object} utils.SuccessResponse{data=domain.Item}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/items [post]
func (h *MarketHandler) CreateItem(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrForbidden)
	}

	var req dto.CreateItemRequest
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

	item, err := h.marketUC.CreateItem(c.Context(), userID, &req, image)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, item, nil)
}

// GetItems godoc
// @Summary Список товаров
// @Description Возвращает товары маркетплейса с фильтром по типу
// @Tags Market
// @Produce json
// @Param type query string false "Тип снаряжения или all"
// @Param include_sold query bool false "Показывать проданные" default(false)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Item}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/items [get]
func (h *MarketHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.marketUC.GetItems(c.Context(), c.Query("type"), c.QueryBool("include_sold", false))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, items, &utils.Meta{Total: len(items)})
}

// GetMyItems godoc
// @Summary Мои товары
// @Description Возвращает товары текущего пользователя, включая проданные
// @Tags Market
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Item}
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/v1/items/mine [get]
func (h *MarketHandler) GetMyItems(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrForbidden)
	}

	items, err := h.marketUC.GetMyItems(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, items, &utils.Meta{Total: len(items)})
}

// GetFavorites godoc
// @Summary Избранные товары
// @Description Возвращает избранные товары текущего пользователя
// @Tags Market
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Item}
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/v1/items/favorites [get]
func (h *MarketHandler) GetFavorites(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrForbidden)
	}

	items, err := h.marketUC.GetFavorites(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, items, &utils.Meta{Total: len(items)})
}

// ToggleFavorite godoc
// @Summary Переключить избранное
// @Description Добавляет товар в избранное или убирает, если он уже там
// @Tags Market
// @Produce json
// @Param id path string true "ID товара"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/items/{id}/favorite [post]
func (h *MarketHandler) ToggleFavorite(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrForbidden)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	favorite, err := h.marketUC.ToggleFavorite(c.Context(), id, userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"favorite": favorite}, nil)
}

// GetItem godoc
// @Summary Получить товар
// @Description Возвращает товар по ID
// @Tags Market
// @Produce json
// @Param id path string true "ID товара"
// @Success 200 {object} utils.SuccessResponse{data=domain.Item}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/items/{id} [get]
func (h *MarketHandler) GetItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	item, err := h.marketUC.GetItem(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, item, nil)
}

// Purchase godoc
// @Summary Купить товар
// @Description Покупает товар с внутреннего баланса. Перевод средств атомарен.
// @Tags Market
// @Produce json
// @Param id path string true "ID товара"
// @Success 200 {object} utils.SuccessResponse{data=domain.Item}
// @Failure 402 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/items/{id}/purchase [post]
func (h *MarketHandler) Purchase(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrForbidden)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	item, err := h.marketUC.Purchase(c.Context(), id, userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, item, nil)
}

// DeleteItem godoc
// @Summary Снять товар с продажи
// @Description Удаляет непроданный товар. Разрешено владельцу и админам.
// @Tags Market
// @Produce json
// @Param id path string true "ID товара"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/items/{id} [delete]
func (h *MarketHandler) DeleteItem(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrForbidden)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.marketUC.DeleteItem(c.Context(), id, userID, middleware.IsAdmin(c)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
