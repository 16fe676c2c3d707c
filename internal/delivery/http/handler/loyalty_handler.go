package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fuelpark-service/internal/pkg/errors"
	"github.com/fuelpark-service/internal/pkg/utils"
	"github.com/fuelpark-service/internal/usecase/dto"
)

type LoyaltyService interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*dto.LoyaltyBalanceResponse, error)
	ScanReceipt(ctx context.Context, userID uuid.UUID) (*dto.ScanReceiptResponse, error)
}

// LoyaltyHandler - баллы лояльности
type LoyaltyHandler struct {
	uc     LoyaltyService
	logger *zap.Logger
}

func NewLoyaltyHandler(uc LoyaltyService, logger *zap.Logger) *LoyaltyHandler {
	return &LoyaltyHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetBalance godoc
// @Summary Баланс баллов
// @Tags Loyalty
// @Produce json
// @Param user_id path string true "ID пользователя (UUID)"
// @Success 200 {object} utils.SuccessResponse{data=dto.LoyaltyBalanceResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/loyalty/{user_id} [get]
func (h *LoyaltyHandler) GetBalance(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.uc.GetBalance(c.UserContext(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ScanReceipt godoc
// @Summary Скан чека
// @Description Баллы начисляются асинхронно, ответ 202 со статусом pending
// @Tags Loyalty
// @Produce json
// @Param user_id path string true "ID пользователя (UUID)"
// @Success 202 {object} utils.SuccessResponse{data=dto.ScanReceiptResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/loyalty/{user_id}/scan [post]
func (h *LoyaltyHandler) ScanReceipt(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.uc.ScanReceipt(c.UserContext(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendAccepted(c, result)
}

func userIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"user_id": "uuid",
		})
	}
	return id, nil
}
