package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/fuelpark-service/internal/domain"
	"github.com/fuelpark-service/internal/domain/repository"
	"github.com/fuelpark-service/internal/pkg/errors"
	"github.com/fuelpark-service/internal/pkg/georank"
	"github.com/fuelpark-service/internal/pkg/utils"
	"github.com/fuelpark-service/internal/usecase/dto"
)

// ParkingUseCase - список парковок с сортировкой
type ParkingUseCase struct {
	repo   repository.ParkingRepository
	logger *zap.Logger
}

func NewParkingUseCase(repo repository.ParkingRepository, logger *zap.Logger) *ParkingUseCase {
	return &ParkingUseCase{
		repo:   repo,
		logger: logger,
	}
}

// List - парковки по расстоянию, цене (дешёвые первыми) или свободным местам
// (больше мест первыми). order меняет направление для цены и мест.
func (uc *ParkingUseCase) List(ctx context.Context, req dto.ParkingListRequest) (*dto.ParkingListResponse, error) {
	sortType, ok := domain.ParseSortType(req.Sort, domain.SortByDistance)
	if !ok {
		return nil, errors.ErrInvalidSort
	}

	lots, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list parkings", zap.Error(err))
		return nil, err
	}

	ref := utils.ReferencePoint(req.Lat, req.Lon)

	var ranked []domain.ParkingLot
	dir := georank.Ascending
	switch sortType {
	case domain.SortByPrice:
		dir = georank.ParseDirection(req.Order, georank.Ascending)
		ranked = georank.RankByAttribute(lots, domain.ParkingAttrPrice, dir)
	case domain.SortBySlots:
		dir = georank.ParseDirection(req.Order, georank.Descending)
		ranked = georank.RankByAttribute(lots, domain.ParkingAttrSlots, dir)
	default:
		ranked = georank.RankByDistance(ref, lots)
	}

	items := make([]dto.ParkingItem, len(ranked))
	for i, p := range ranked {
		var distance *float64
		if d, ok := georank.Distance(ref, p); ok {
			distance = &d
		}
		items[i] = dto.NewParkingItem(p, distance)
	}

	return &dto.ParkingListResponse{
		Parkings: items,
		Total:    len(items),
		Sort:     string(sortType),
		Order:    dir.String(),
	}, nil
}

// GetByID - карточка парковки
func (uc *ParkingUseCase) GetByID(ctx context.Context, req dto.ParkingDetailRequest) (*dto.ParkingItem, error) {
	lot, err := uc.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	var distance *float64
	if d, ok := georank.Distance(utils.ReferencePoint(req.Lat, req.Lon), *lot); ok {
		distance = &d
	}

	item := dto.NewParkingItem(*lot, distance)
	return &item, nil
}
