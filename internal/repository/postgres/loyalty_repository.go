package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/fuelpark-service/internal/domain"
	"github.com/fuelpark-service/internal/domain/repository"
	"github.com/fuelpark-service/internal/pkg/errors"
)

type loyaltyRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewLoyaltyRepository(db *DB) repository.LoyaltyRepository {
	return &loyaltyRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *loyaltyRepository) GetAccount(ctx context.Context, userID uuid.UUID) (*domain.LoyaltyAccount, error) {
	return r.getAccount(ctx, r.db, userID)
}

// ApplyScan записывает скан в receipt_scans и начисляет баллы. Первичный ключ
// scan_id делает повторную доставку того же события безопасной.
func (r *loyaltyRepository) ApplyScan(ctx context.Context, event domain.ReceiptScannedEvent) (*domain.LoyaltyAccount, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, false, errors.ErrDatabaseError
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO receipt_scans (scan_id, user_id, points, scanned_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (scan_id) DO NOTHING`,
		event.ScanID, event.UserID, event.Points, event.ScannedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, false, errors.ErrUserNotFound
		}
		r.logger.Error("Failed to record receipt scan", zap.String("scan_id", event.ScanID.String()), zap.Error(err))
		return nil, false, errors.ErrDatabaseError
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return nil, false, errors.ErrDatabaseError
	}

	if inserted == 0 {
		account, err := r.getAccount(ctx, tx, event.UserID)
		if err != nil {
			return nil, false, err
		}
		return account, false, nil
	}

	var account domain.LoyaltyAccount
	err = tx.GetContext(ctx, &account, `
		UPDATE loyalty_accounts
		SET points = points + $2, updated_at = now()
		WHERE user_id = $1
		RETURNING user_id, points, updated_at`,
		event.UserID, event.Points,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, false, errors.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("Failed to credit points", zap.String("user_id", event.UserID.String()), zap.Error(err))
		return nil, false, errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit receipt scan", zap.Error(err))
		return nil, false, errors.ErrDatabaseError
	}
	return &account, true, nil
}

func (r *loyaltyRepository) getAccount(ctx context.Context, q sqlx.QueryerContext, userID uuid.UUID) (*domain.LoyaltyAccount, error) {
	var account domain.LoyaltyAccount
	err := sqlx.GetContext(ctx, q, &account, `
		SELECT user_id, points, updated_at
		FROM loyalty_accounts
		WHERE user_id = $1`,
		userID,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get loyalty account", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &account, nil
}
