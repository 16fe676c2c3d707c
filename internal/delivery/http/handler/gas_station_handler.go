package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fuelpark-service/internal/pkg/errors"
	"github.com/fuelpark-service/internal/pkg/utils"
	"github.com/fuelpark-service/internal/pkg/validator"
	"github.com/fuelpark-service/internal/usecase/dto"
)

// GasStationService - операции над заправками, нужные обработчику
type GasStationService interface {
	ListProvinces(ctx context.Context) ([]string, error)
	ListLocalities(ctx context.Context, province string) ([]string, error)
	ListByLocality(ctx context.Context, req dto.StationListRequest) (*dto.StationListResponse, error)
	ListNearby(ctx context.Context, req dto.NearbyStationsRequest) (*dto.StationListResponse, error)
	GetByID(ctx context.Context, req dto.StationDetailRequest) (*dto.StationItem, error)
}

// GasStationHandler - обработчик запросов по заправкам
type GasStationHandler struct {
	uc     GasStationService
	logger *zap.Logger
}

func NewGasStationHandler(uc GasStationService, logger *zap.Logger) *GasStationHandler {
	return &GasStationHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProvinces godoc
// @Summary Список провинций
// @Tags GasStations
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/gas-stations/provinces [get]
func (h *GasStationHandler) ListProvinces(c *fiber.Ctx) error {
	provinces, err := h.uc.ListProvinces(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"provinces": provinces,
	}, &utils.Meta{
		Total: len(provinces),
	})
}

// ListLocalities godoc
// @Summary Населённые пункты провинции
// @Tags GasStations
// @Produce json
// @Param province query string true "Провинция, как в списке провинций"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/gas-stations/localities [get]
func (h *GasStationHandler) ListLocalities(c *fiber.Ctx) error {
	localities, err := h.uc.ListLocalities(c.UserContext(), c.Query("province"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"localities": localities,
	}, &utils.Meta{
		Total: len(localities),
	})
}

// List godoc
// @Summary Заправки населённого пункта
// @Description Без lat/lon сортировка по расстоянию сохраняет порядок источника. Заправки без координат идут последними.
// @Tags GasStations
// @Produce json
// @Param locality query string true "Населённый пункт"
// @Param lat query number false "Широта пользователя"
// @Param lon query number false "Долгота пользователя"
// @Param sort query string false "distance | price" default(distance)
// @Param fuel query string false "Тип топлива" default(gasolina95E5)
// @Param order query string false "asc | desc" default(asc)
// @Success 200 {object} utils.SuccessResponse{data=dto.StationListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/gas-stations [get]
func (h *GasStationHandler) List(c *fiber.Ctx) error {
	req := dto.StationListRequest{
		Locality: c.Query("locality"),
		Lat:      queryFloat(c, "lat"),
		Lon:      queryFloat(c, "lon"),
		Sort:     c.Query("sort"),
		Fuel:     c.Query("fuel"),
		Order:    c.Query("order"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.uc.ListByLocality(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Sort:  result.Sort,
	})
}

// Nearby godoc
// @Summary Заправки рядом с точкой
// @Tags GasStations
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Param radius_km query number false "Радиус поиска, км" default(15)
// @Param sort query string false "distance | price" default(distance)
// @Param fuel query string false "Тип топлива" default(gasolina95E5)
// @Param order query string false "asc | desc" default(asc)
// @Success 200 {object} utils.SuccessResponse{data=dto.StationListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/gas-stations/nearby [get]
func (h *GasStationHandler) Nearby(c *fiber.Ctx) error {
	lat, lon := queryFloat(c, "lat"), queryFloat(c, "lon")
	if lat == nil || lon == nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	req := dto.NearbyStationsRequest{
		Lat:   *lat,
		Lon:   *lon,
		Sort:  c.Query("sort"),
		Fuel:  c.Query("fuel"),
		Order: c.Query("order"),
	}
	if raw := c.Query("radius_km"); raw != "" {
		radius, ok := utils.ParseDecimal(raw)
		if !ok {
			return utils.SendError(c, errors.ErrInvalidRadius)
		}
		req.RadiusKm = radius
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.uc.ListNearby(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Sort:  result.Sort,
	})
}

// Get godoc
// @Summary Заправка по ID
// @Tags GasStations
// @Produce json
// @Param id path int true "ID заправки"
// @Param lat query number false "Широта пользователя"
// @Param lon query number false "Долгота пользователя"
// @Param fuel query string false "Тип топлива" default(gasolina95E5)
// @Success 200 {object} utils.SuccessResponse{data=dto.StationItem}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/gas-stations/{id} [get]
func (h *GasStationHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"id": "positive integer",
		}))
	}

	req := dto.StationDetailRequest{
		ID:   int64(id),
		Lat:  queryFloat(c, "lat"),
		Lon:  queryFloat(c, "lon"),
		Fuel: c.Query("fuel"),
	}

	result, err := h.uc.GetByID(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
