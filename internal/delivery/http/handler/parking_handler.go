package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fuelpark-service/internal/pkg/utils"
	"github.com/fuelpark-service/internal/pkg/validator"
	"github.com/fuelpark-service/internal/usecase/dto"
)

type ParkingService interface {
	List(ctx context.Context, req dto.ParkingListRequest) (*dto.ParkingListResponse, error)
	GetByID(ctx context.Context, req dto.ParkingDetailRequest) (*dto.ParkingItem, error)
}

// ParkingHandler - обработчик запросов по парковкам
type ParkingHandler struct {
	uc     ParkingService
	logger *zap.Logger
}

func NewParkingHandler(uc ParkingService, logger *zap.Logger) *ParkingHandler {
	return &ParkingHandler{
		uc:     uc,
		logger: logger,
	}
}

// List godoc
// @Summary Список парковок
// @Tags Parkings
// @Produce json
// @Param lat query number false "Широта пользователя"
// @Param lon query number false "Долгота пользователя"
// @Param sort query string false "distance | price | slots" default(distance)
// @Param order query string false "asc | desc"
// @Success 200 {object} utils.SuccessResponse{data=dto.ParkingListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/parkings [get]
func (h *ParkingHandler) List(c *fiber.Ctx) error {
	req := dto.ParkingListRequest{
		Lat:   queryFloat(c, "lat"),
		Lon:   queryFloat(c, "lon"),
		Sort:  c.Query("sort"),
		Order: c.Query("order"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.uc.List(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Sort:  result.Sort,
	})
}

// Get godoc
// @Summary Парковка по ID
// @Tags Parkings
// @Produce json
// @Param id path string true "ID парковки"
// @Param lat query number false "Широта пользователя"
// @Param lon query number false "Долгота пользователя"
// @Success 200 {object} utils.SuccessResponse{data=dto.ParkingItem}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/parkings/{id} [get]
func (h *ParkingHandler) Get(c *fiber.Ctx) error {
	req := dto.ParkingDetailRequest{
		ID:  c.Params("id"),
		Lat: queryFloat(c, "lat"),
		Lon: queryFloat(c, "lon"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.uc.GetByID(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
