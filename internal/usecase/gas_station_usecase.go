package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fuelpark-service/internal/domain"
	"github.com/fuelpark-service/internal/domain/repository"
	"github.com/fuelpark-service/internal/pkg/errors"
	"github.com/fuelpark-service/internal/pkg/georank"
	"github.com/fuelpark-service/internal/pkg/utils"
	"github.com/fuelpark-service/internal/usecase/dto"
)

const (
	cacheKeyProvinces        = "gas:provinces"
	cacheKeyLocalitiesPrefix = "gas:localities:"
)

// GasStationUseCase - поиск и ранжирование заправок
type GasStationUseCase struct {
	repo           repository.GasStationRepository
	cacheRepo      repository.CacheRepository
	lists          *expirable.LRU[string, []string]
	cacheTTL       time.Duration
	nearbyRadiusKm float64
	logger         *zap.Logger
}

// NewGasStationUseCase - создание нового GasStationUseCase.
// Списки провинций и населённых пунктов кешируются в памяти (lruSize записей)
// и в Redis, оба уровня с cacheTTL.
func NewGasStationUseCase(
	repo repository.GasStationRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
	lruSize int,
	nearbyRadiusKm float64,
) *GasStationUseCase {
	return &GasStationUseCase{
		repo:           repo,
		cacheRepo:      cacheRepo,
		lists:          expirable.NewLRU[string, []string](lruSize, nil, cacheTTL),
		cacheTTL:       cacheTTL,
		nearbyRadiusKm: nearbyRadiusKm,
		logger:         logger,
	}
}

// ListProvinces - провинции по алфавиту
func (uc *GasStationUseCase) ListProvinces(ctx context.Context) ([]string, error) {
	return uc.cachedList(ctx, cacheKeyProvinces, uc.repo.ListProvinces)
}

// ListLocalities - населённые пункты провинции по алфавиту
func (uc *GasStationUseCase) ListLocalities(ctx context.Context, province string) ([]string, error) {
	province = strings.TrimSpace(province)
	if province == "" {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"province": "required",
		})
	}

	return uc.cachedList(ctx, cacheKeyLocalitiesPrefix+province, func(ctx context.Context) ([]string, error) {
		return uc.repo.ListLocalities(ctx, province)
	})
}

// ListByLocality - заправки населённого пункта в выбранном порядке
func (uc *GasStationUseCase) ListByLocality(ctx context.Context, req dto.StationListRequest) (*dto.StationListResponse, error) {
	q, err := parseStationQuery(req.Sort, req.Fuel, req.Order)
	if err != nil {
		return nil, err
	}

	stations, err := uc.repo.GetByLocality(ctx, strings.TrimSpace(req.Locality))
	if err != nil {
		uc.logger.Error("Failed to get stations by locality",
			zap.String("locality", req.Locality),
			zap.Error(err))
		return nil, err
	}

	ref := utils.ReferencePoint(req.Lat, req.Lon)
	return uc.buildResponse(stations, ref, q), nil
}

// ListNearby - заправки в радиусе от точки. Радиус по умолчанию из конфигурации.
func (uc *GasStationUseCase) ListNearby(ctx context.Context, req dto.NearbyStationsRequest) (*dto.StationListResponse, error) {
	ref := georank.Coordinate{Lat: req.Lat, Lon: req.Lon}
	if !ref.Valid() {
		return nil, errors.ErrInvalidCoordinates
	}

	radius := req.RadiusKm
	if radius == 0 {
		radius = uc.nearbyRadiusKm
	}
	if !utils.ValidateRadius(radius) {
		return nil, errors.ErrInvalidRadius
	}

	q, err := parseStationQuery(req.Sort, req.Fuel, req.Order)
	if err != nil {
		return nil, err
	}

	stations, err := uc.repo.GetNearby(ctx, ref.Lat, ref.Lon, radius)
	if err != nil {
		uc.logger.Error("Failed to get nearby stations",
			zap.Float64("lat", ref.Lat),
			zap.Float64("lon", ref.Lon),
			zap.Float64("radius_km", radius),
			zap.Error(err))
		return nil, err
	}

	return uc.buildResponse(stations, &ref, q), nil
}

// GetByID - карточка заправки с ценой выбранного топлива и расстоянием до
// точки пользователя, если она передана
func (uc *GasStationUseCase) GetByID(ctx context.Context, req dto.StationDetailRequest) (*dto.StationItem, error) {
	fuel := domain.DefaultFuelType
	if req.Fuel != "" {
		if !domain.IsValidFuelType(req.Fuel) {
			return nil, errors.ErrInvalidFuelType
		}
		fuel = domain.FuelType(req.Fuel)
	}

	st, err := uc.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	var distance *float64
	if d, ok := georank.Distance(utils.ReferencePoint(req.Lat, req.Lon), *st); ok {
		distance = &d
	}

	item := dto.NewStationItem(*st, fuel, distance)
	return &item, nil
}

type stationQuery struct {
	sort domain.SortType
	fuel domain.FuelType
	dir  georank.Direction
}

func parseStationQuery(sortParam, fuelParam, orderParam string) (stationQuery, error) {
	sortType, ok := domain.ParseSortType(sortParam, domain.SortByDistance)
	if !ok || sortType == domain.SortBySlots {
		return stationQuery{}, errors.ErrInvalidSort
	}

	fuel := domain.DefaultFuelType
	if fuelParam != "" {
		if !domain.IsValidFuelType(fuelParam) {
			return stationQuery{}, errors.ErrInvalidFuelType
		}
		fuel = domain.FuelType(fuelParam)
	}

	return stationQuery{
		sort: sortType,
		fuel: fuel,
		dir:  georank.ParseDirection(orderParam, georank.Ascending),
	}, nil
}

func (uc *GasStationUseCase) buildResponse(stations []domain.GasStation, ref *georank.Coordinate, q stationQuery) *dto.StationListResponse {
	if ref != nil {
		uc.logUnknownPositions(stations)
	}

	var ranked []domain.GasStation
	switch q.sort {
	case domain.SortByPrice:
		ranked = georank.RankByAttribute(stations, string(q.fuel), q.dir)
	default:
		ranked = georank.RankByDistance(ref, stations)
	}

	items := make([]dto.StationItem, len(ranked))
	for i, st := range ranked {
		var distance *float64
		if d, ok := georank.Distance(ref, st); ok {
			distance = &d
		}
		items[i] = dto.NewStationItem(st, q.fuel, distance)
	}

	return &dto.StationListResponse{
		Stations: items,
		Total:    len(items),
		Sort:     string(q.sort),
		Order:    q.dir.String(),
		Fuel:     string(q.fuel),
	}
}

func (uc *GasStationUseCase) logUnknownPositions(stations []domain.GasStation) {
	if !uc.logger.Core().Enabled(zap.DebugLevel) {
		return
	}
	for _, st := range stations {
		if _, ok := st.Position(); !ok {
			uc.logger.Debug("Station without usable coordinates",
				zap.Int64("id", st.ID),
				zap.String("locality", st.Locality))
		}
	}
}

// cachedList: память -> Redis -> БД. Ошибки Redis не фатальны.
func (uc *GasStationUseCase) cachedList(
	ctx context.Context,
	key string,
	load func(context.Context) ([]string, error),
) ([]string, error) {
	if values, ok := uc.lists.Get(key); ok {
		return slices.Clone(values), nil
	}

	cached, err := uc.cacheRepo.GetStrings(ctx, key)
	if err != nil {
		uc.logger.Warn("Cache read failed, falling back to database", zap.String("key", key), zap.Error(err))
	} else if cached != nil {
		uc.lists.Add(key, cached)
		return slices.Clone(cached), nil
	}

	values, err := load(ctx)
	if err != nil {
		uc.logger.Error("Failed to load list", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	values = sortNames(values)

	uc.lists.Add(key, values)
	if err := uc.cacheRepo.SetStrings(ctx, key, values, uc.cacheTTL); err != nil {
		uc.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}

	return slices.Clone(values), nil
}

// sortNames убирает пустые значения и дубликаты и сортирует по правилам
// испанского алфавита (Á рядом с A, Ñ после N).
func sortNames(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	collate.New(language.Spanish).SortStrings(out)
	return out
}
