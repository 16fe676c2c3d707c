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

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Create вставляет пользователя и его счёт лояльности в одной транзакции
func (r *userRepository) Create(ctx context.Context, user *domain.User, welcomePoints int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer func() { _ = tx.Rollback() }()

	err = tx.QueryRowxContext(ctx, `
		INSERT INTO users (id, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		user.ID, user.Username, user.PasswordHash,
	).Scan(&user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrUserAlreadyExists
		}
		r.logger.Error("Failed to insert user", zap.String("username", user.Username), zap.Error(err))
		return errors.ErrDatabaseError
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO loyalty_accounts (user_id, points)
		VALUES ($1, $2)`,
		user.ID, welcomePoints,
	)
	if err != nil {
		r.logger.Error("Failed to create loyalty account", zap.String("user_id", user.ID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit user creation", zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1`,
		username,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get user by username", zap.String("username", username), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET password_hash = $2
		WHERE id = $1`,
		userID, passwordHash,
	)
	if err != nil {
		r.logger.Error("Failed to update password", zap.String("user_id", userID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	n, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n == 0 {
		return errors.ErrUserNotFound
	}
	return nil
}
