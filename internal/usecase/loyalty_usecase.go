package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fuelpark-service/internal/domain"
	"github.com/fuelpark-service/internal/domain/repository"
	"github.com/fuelpark-service/internal/pkg/errors"
	"github.com/fuelpark-service/internal/usecase/dto"
)

// LoyaltyUseCase - баллы лояльности за отсканированные чеки
type LoyaltyUseCase struct {
	loyaltyRepo      repository.LoyaltyRepository
	streamRepo       repository.StreamRepository
	pointsPerReceipt int
	rewardPoints     int
	logger           *zap.Logger
	now              func() time.Time
}

func NewLoyaltyUseCase(
	loyaltyRepo repository.LoyaltyRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
	pointsPerReceipt int,
	rewardPoints int,
) *LoyaltyUseCase {
	return &LoyaltyUseCase{
		loyaltyRepo:      loyaltyRepo,
		streamRepo:       streamRepo,
		pointsPerReceipt: pointsPerReceipt,
		rewardPoints:     rewardPoints,
		logger:           logger,
		now:              time.Now,
	}
}

// GetBalance возвращает текущий баланс пользователя и сколько баллов
// осталось до награды
func (uc *LoyaltyUseCase) GetBalance(ctx context.Context, userID uuid.UUID) (*dto.LoyaltyBalanceResponse, error) {
	account, err := uc.loyaltyRepo.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	remaining := max(uc.rewardPoints-account.Points, 0)
	return &dto.LoyaltyBalanceResponse{
		UserID:          account.UserID,
		Points:          account.Points,
		RewardPoints:    uc.rewardPoints,
		PointsToReward:  remaining,
		RewardAvailable: remaining == 0,
		UpdatedAt:       account.UpdatedAt,
	}, nil
}

// ScanReceipt регистрирует скан чека. Баллы начисляет воркер, поэтому
// ответ возвращается со статусом pending.
func (uc *LoyaltyUseCase) ScanReceipt(ctx context.Context, userID uuid.UUID) (*dto.ScanReceiptResponse, error) {
	if _, err := uc.loyaltyRepo.GetAccount(ctx, userID); err != nil {
		return nil, err
	}

	event := domain.ReceiptScannedEvent{
		ScanID:    uuid.New(),
		UserID:    userID,
		Points:    uc.pointsPerReceipt,
		ScannedAt: uc.now().UTC(),
	}

	messageID, err := uc.streamRepo.PublishToStream(ctx, domain.StreamReceiptScanned, event)
	if err != nil {
		uc.logger.Error("Failed to publish receipt scan",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, errors.ErrStreamError
	}

	uc.logger.Info("Receipt scan queued",
		zap.String("scan_id", event.ScanID.String()),
		zap.String("message_id", messageID))

	return &dto.ScanReceiptResponse{
		ScanID:    event.ScanID,
		UserID:    userID,
		Points:    event.Points,
		MessageID: messageID,
		Status:    dto.ScanStatusPending,
	}, nil
}

// ApplyReceipt начисляет баллы по событию. Повторная доставка того же
// события не меняет баланс.
func (uc *LoyaltyUseCase) ApplyReceipt(ctx context.Context, event domain.ReceiptScannedEvent) (*domain.LoyaltyAccount, error) {
	if event.ScanID == uuid.Nil || event.UserID == uuid.Nil || event.Points <= 0 {
		return nil, errors.ErrInvalidRequest
	}

	account, applied, err := uc.loyaltyRepo.ApplyScan(ctx, event)
	if err != nil {
		return nil, err
	}

	if applied {
		uc.logger.Info("Points credited",
			zap.String("user_id", event.UserID.String()),
			zap.String("scan_id", event.ScanID.String()),
			zap.Int("points", event.Points),
			zap.Int("balance", account.Points))
	} else {
		uc.logger.Debug("Receipt scan already applied",
			zap.String("scan_id", event.ScanID.String()))
	}

	return account, nil
}
