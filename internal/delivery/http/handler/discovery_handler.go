package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/pkg/utils"
	"github.com/skatespot-service/internal/pkg/validator"
	"github.com/skatespot-service/internal/usecase"
	"github.com/skatespot-service/internal/usecase/dto"
)

// DiscoveryHandler - обработчик поисковой выдачи спотов
type DiscoveryHandler struct {
	discoveryUC *usecase.DiscoveryUseCase
	logger      *zap.Logger
}

// NewDiscoveryHandler создает новый экземпляр DiscoveryHandler
func NewDiscoveryHandler(discoveryUC *usecase.DiscoveryUseCase, logger *zap.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUC: discoveryUC,
		logger:      logger,
	}
}

// Discover godoc
// @Summary Поиск спотов
// @Description Возвращает страницу спотов по фильтрам. При переданных lat/lon выдача сортируется по удалённости и поддерживает фильтр по радиусу.
// @Tags Discovery
// @Produce json
// @Param search query string false "Поиск по названию и категории"
// @Param category query string false "Категория спота или all"
// @Param city query string false "Город или all"
// @Param status query string false "Фильтр посещаемости (all, active, scheduled, popular, empty)"
// @Param radius query number false "Радиус в метрах (50 - 100000)"
// @Param page query int false "Номер страницы" default(1)
// @Param lat query number false "Широта зрителя"
// @Param lon query number false "Долгота зрителя"
// @Success 200 {object} utils.SuccessResponse{data=dto.DiscoveryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/spots [get]
func (h *DiscoveryHandler) Discover(c *fiber.Ctx) error {
	req := dto.DiscoveryRequest{
		Search:       c.Query("search"),
		Category:     c.Query("category"),
		City:         c.Query("city"),
		Status:       c.Query("status"),
		RadiusMeters: c.QueryFloat("radius"),
		Page:         c.QueryInt("page", 1),
	}

	if c.Query("lat") != "" && c.Query("lon") != "" {
		lat := c.QueryFloat("lat")
		lon := c.QueryFloat("lon")
		req.Lat = &lat
		req.Lon = &lon
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.discoveryUC.Discover(c.Context(), &req, viewerFromCtx(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{
		Total:      resp.Total,
		Page:       resp.Page,
		TotalPages: resp.TotalPages,
	})
}

// Cities godoc
// @Summary Города со спотами
// @Description Возвращает список городов, в которых есть одобренные споты
// @Tags Discovery
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]string}
// @Router /api/v1/cities [get]
func (h *DiscoveryHandler) Cities(c *fiber.Ctx) error {
	cities, err := h.discoveryUC.Cities(c.Context())
	if err != nil {
		h.logger.Error("Failed to list cities", zap.Error(err))
		return utils.SendError(c, errors.ErrInternalServer)
	}

	return utils.SendSuccess(c, cities, &utils.Meta{Total: len(cities)})
}
