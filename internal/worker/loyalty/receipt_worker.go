package loyalty

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fuelpark-service/internal/domain"
	"github.com/fuelpark-service/internal/domain/repository"
	"github.com/fuelpark-service/internal/pkg/errors"
	"github.com/fuelpark-service/internal/worker"
)

const (
	defaultBatchSize = 20
	pollInterval     = 200 * time.Millisecond
	errorBackoff     = time.Second
	retryBackoff     = 100 * time.Millisecond

	// DefaultClaimMinIdle - через сколько неподтверждённое сообщение забирается повторно
	DefaultClaimMinIdle = 30 * time.Second
)

// ReceiptApplier начисляет баллы по событию скана
type ReceiptApplier interface {
	ApplyReceipt(ctx context.Context, event domain.ReceiptScannedEvent) (*domain.LoyaltyAccount, error)
}

// ReceiptWorker читает stream:loyalty:receipt и начисляет баллы.
// Успешно обработанные и непригодные сообщения подтверждаются, сообщения
// с временной ошибкой остаются в pending и забираются повторно после claimMinIdle,
// в том числе после рестарта под новым именем consumer'а.
type ReceiptWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	applier      ReceiptApplier
	batchSize    int
	maxRetries   int
	claimMinIdle time.Duration
}

func NewReceiptWorker(
	streamRepo repository.StreamRepository,
	applier ReceiptApplier,
	consumerGroup string,
	batchSize int,
	maxRetries int,
	claimMinIdle time.Duration,
	logger *zap.Logger,
) *ReceiptWorker {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if maxRetries <= 0 {
		maxRetries = 1
	}
	if claimMinIdle < 0 {
		claimMinIdle = DefaultClaimMinIdle
	}

	return &ReceiptWorker{
		BaseWorker:   worker.NewBaseWorker("loyalty-receipt", consumerGroup, logger),
		streamRepo:   streamRepo,
		applier:      applier,
		batchSize:    batchSize,
		maxRetries:   maxRetries,
		claimMinIdle: claimMinIdle,
	}
}

// Start блокирует до Stop или отмены контекста
func (w *ReceiptWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting receipt worker",
		zap.String("stream", domain.StreamReceiptScanned),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize),
		zap.Duration("claim_min_idle", w.claimMinIdle))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamReceiptScanned, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		processed, err := w.ProcessBatch(ctx)
		if err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			w.Sleep(ctx, errorBackoff)
			continue
		}
		if processed == 0 {
			w.Sleep(ctx, pollInterval)
		}
	}
}

// ProcessBatch обрабатывает одну порцию сообщений и возвращает их количество.
// Сначала забираются зависшие в pending сообщения, новые читаются только
// когда таких нет.
func (w *ReceiptWorker) ProcessBatch(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ClaimPending(
		ctx,
		domain.StreamReceiptScanned,
		w.ConsumerGroup(),
		w.ConsumerName(),
		w.claimMinIdle,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to claim pending messages: %w", err)
	}

	if len(messages) == 0 {
		messages, err = w.streamRepo.ConsumeBatch(
			ctx,
			domain.StreamReceiptScanned,
			w.ConsumerGroup(),
			w.ConsumerName(),
			w.batchSize,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to consume batch: %w", err)
		}
	}

	for _, msg := range messages {
		w.handle(ctx, msg)
	}
	return len(messages), nil
}

func (w *ReceiptWorker) handle(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger().With(zap.String("message_id", msg.ID))

	var event domain.ReceiptScannedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Malformed receipt event, skipping", zap.Error(err))
		w.ack(ctx, msg.ID)
		return
	}

	err := w.apply(ctx, event)
	switch {
	case err == nil:
		w.ack(ctx, msg.ID)
	case isPermanent(err):
		logger.Warn("Receipt event rejected, skipping",
			zap.String("scan_id", event.ScanID.String()),
			zap.Error(err))
		w.ack(ctx, msg.ID)
	default:
		logger.Error("Receipt event left pending",
			zap.String("scan_id", event.ScanID.String()),
			zap.Int("attempts", w.maxRetries),
			zap.Error(err))
	}
}

func (w *ReceiptWorker) apply(ctx context.Context, event domain.ReceiptScannedEvent) error {
	var err error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if _, err = w.applier.ApplyReceipt(ctx, event); err == nil || isPermanent(err) {
			return err
		}
		if attempt < w.maxRetries && !w.Sleep(ctx, time.Duration(attempt)*retryBackoff) {
			break
		}
	}
	return err
}

func (w *ReceiptWorker) ack(ctx context.Context, id string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamReceiptScanned, w.ConsumerGroup(), id); err != nil {
		w.Logger().Error("Failed to ack message", zap.String("message_id", id), zap.Error(err))
	}
}

// isPermanent - ошибки, которые не исправит повторная попытка
func isPermanent(err error) bool {
	return stderrors.Is(err, errors.ErrInvalidRequest) || stderrors.Is(err, errors.ErrUserNotFound)
}
