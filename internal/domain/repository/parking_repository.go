package repository

import (
	"context"

	"github.com/fuelpark-service/internal/domain"
)

// ParkingRepository определяет методы для работы с парковками
type ParkingRepository interface {
	// List возвращает все парковки
	List(ctx context.Context) ([]domain.ParkingLot, error)

	// GetByID возвращает парковку по ID
	GetByID(ctx context.Context, id string) (*domain.ParkingLot, error)
}
