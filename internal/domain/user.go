package domain

import (
	"time"

	"github.com/google/uuid"
)

// User - учётная запись пользователя приложения
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// LoyaltyAccount - баланс баллов лояльности
type LoyaltyAccount struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Points    int       `json:"points" db:"points"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
