package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/fuelpark-service/internal/domain"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	// Create создаёт пользователя вместе со счётом лояльности
	Create(ctx context.Context, user *domain.User, welcomePoints int) error

	// GetByUsername возвращает пользователя по имени
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// UpdatePassword заменяет хэш пароля пользователя
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// LoyaltyRepository определяет методы для работы с баллами лояльности
type LoyaltyRepository interface {
	// GetAccount возвращает счёт пользователя
	GetAccount(ctx context.Context, userID uuid.UUID) (*domain.LoyaltyAccount, error)

	// ApplyScan начисляет баллы за чек. Повторное начисление по тому же
	// scanID ничего не меняет; applied=false в этом случае.
	ApplyScan(ctx context.Context, event domain.ReceiptScannedEvent) (account *domain.LoyaltyAccount, applied bool, err error)
}
