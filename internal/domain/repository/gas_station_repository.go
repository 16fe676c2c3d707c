package repository

import (
	"context"

	"github.com/fuelpark-service/internal/domain"
)

// GasStationRepository определяет методы для работы с заправками
type GasStationRepository interface {
	// ListProvinces возвращает список провинций, в которых есть заправки
	ListProvinces(ctx context.Context) ([]string, error)

	// ListLocalities возвращает населённые пункты провинции
	ListLocalities(ctx context.Context, province string) ([]string, error)

	// GetByLocality возвращает заправки населённого пункта
	GetByLocality(ctx context.Context, locality string) ([]domain.GasStation, error)

	// GetNearby возвращает заправки в радиусе radiusKm от точки
	GetNearby(ctx context.Context, lat, lon, radiusKm float64) ([]domain.GasStation, error)

	// GetByID возвращает заправку по ID
	GetByID(ctx context.Context, id int64) (*domain.GasStation, error)
}
