package repository

import (
	"context"
	"time"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу; nil без ошибки - промах
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetStrings получает список строк (провинции, населённые пункты)
	GetStrings(ctx context.Context, key string) ([]string, error)

	// SetStrings сохраняет список строк
	SetStrings(ctx context.Context, key string, values []string, ttl time.Duration) error
}
