package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/fuelpark-service/internal/domain"
	"github.com/fuelpark-service/internal/domain/repository"
	"github.com/fuelpark-service/internal/pkg/errors"
	"github.com/fuelpark-service/internal/pkg/georank"
	"github.com/fuelpark-service/internal/pkg/utils"
)

const gasStationColumns = `
	id, direccion, localidad, provincia, rotulo, servicio, horario,
	latitud, longitud,
	gasolina95e5, gasolina95e10, gasolina98e5, gasolina98e10,
	gasoleoa, gasoleob, gasoleopremium,
	updated_at`

// gasStationRow - строка таблицы как она пришла из фида: координаты и цены текстом
type gasStationRow struct {
	ID             int64          `db:"id"`
	Direccion      string         `db:"direccion"`
	Localidad      string         `db:"localidad"`
	Provincia      string         `db:"provincia"`
	Rotulo         string         `db:"rotulo"`
	Servicio       string         `db:"servicio"`
	Horario        string         `db:"horario"`
	Latitud        sql.NullString `db:"latitud"`
	Longitud       sql.NullString `db:"longitud"`
	Gasolina95E5   sql.NullString `db:"gasolina95e5"`
	Gasolina95E10  sql.NullString `db:"gasolina95e10"`
	Gasolina98E5   sql.NullString `db:"gasolina98e5"`
	Gasolina98E10  sql.NullString `db:"gasolina98e10"`
	GasoleoA       sql.NullString `db:"gasoleoa"`
	GasoleoB       sql.NullString `db:"gasoleob"`
	GasoleoPremium sql.NullString `db:"gasoleopremium"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (r gasStationRow) toDomain() domain.GasStation {
	st := domain.GasStation{
		ID:        r.ID,
		Address:   r.Direccion,
		Locality:  r.Localidad,
		Province:  r.Provincia,
		Brand:     r.Rotulo,
		Service:   r.Servicio,
		Schedule:  r.Horario,
		Prices:    make(map[domain.FuelType]float64),
		UpdatedAt: r.UpdatedAt,
	}

	// координата известна только если распознаны обе компоненты
	lat, latOK := utils.ParseDecimal(r.Latitud.String)
	lon, lonOK := utils.ParseDecimal(r.Longitud.String)
	if latOK && lonOK && utils.ValidateCoordinates(lat, lon) {
		st.Lat, st.Lon = lat, lon
	}

	prices := map[domain.FuelType]sql.NullString{
		domain.FuelGasolina95E5:   r.Gasolina95E5,
		domain.FuelGasolina95E10:  r.Gasolina95E10,
		domain.FuelGasolina98E5:   r.Gasolina98E5,
		domain.FuelGasolina98E10:  r.Gasolina98E10,
		domain.FuelGasoleoA:       r.GasoleoA,
		domain.FuelGasoleoB:       r.GasoleoB,
		domain.FuelGasoleoPremium: r.GasoleoPremium,
	}
	for fuel, raw := range prices {
		if v, ok := utils.ParseDecimal(raw.String); ok {
			st.Prices[fuel] = v
		}
	}

	return st
}

type gasStationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewGasStationRepository(db *DB) repository.GasStationRepository {
	return &gasStationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *gasStationRepository) ListProvinces(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT provincia
		FROM gas_stations
		WHERE trim(provincia) <> ''
		ORDER BY provincia`

	provinces := []string{}
	if err := r.db.SelectContext(ctx, &provinces, query); err != nil {
		r.logger.Error("Failed to list provinces", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return provinces, nil
}

func (r *gasStationRepository) ListLocalities(ctx context.Context, province string) ([]string, error) {
	query := `
		SELECT DISTINCT localidad
		FROM gas_stations
		WHERE provincia = $1 AND trim(localidad) <> ''
		ORDER BY localidad`

	localities := []string{}
	if err := r.db.SelectContext(ctx, &localities, query, province); err != nil {
		r.logger.Error("Failed to list localities", zap.String("province", province), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return localities, nil
}

func (r *gasStationRepository) GetByLocality(ctx context.Context, locality string) ([]domain.GasStation, error) {
	query := `SELECT ` + gasStationColumns + `
		FROM gas_stations
		WHERE localidad = $1
		ORDER BY id`

	var rows []gasStationRow
	if err := r.db.SelectContext(ctx, &rows, query, locality); err != nil {
		r.logger.Error("Failed to get stations by locality", zap.String("locality", locality), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return toStations(rows), nil
}

// GetNearby отбирает кандидатов по bounding box на стороне БД,
// затем оставляет только станции не дальше radiusKm по haversine.
func (r *gasStationRepository) GetNearby(ctx context.Context, lat, lon, radiusKm float64) ([]domain.GasStation, error) {
	box := domain.BoundingBoxAround(lat, lon, radiusKm)

	query := `SELECT ` + gasStationColumns + `
		FROM gas_stations
		WHERE lat_num BETWEEN $1 AND $2
		  AND lon_num BETWEEN $3 AND $4
		ORDER BY id`

	var rows []gasStationRow
	err := r.db.SelectContext(ctx, &rows, query, box.MinLat, box.MaxLat, box.MinLon, box.MaxLon)
	if err != nil {
		r.logger.Error("Failed to get nearby stations",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Float64("radius_km", radiusKm),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	center := georank.Coordinate{Lat: lat, Lon: lon}
	stations := make([]domain.GasStation, 0, len(rows))
	for _, row := range rows {
		st := row.toDomain()
		pos, ok := st.Position()
		if !ok {
			continue
		}
		if georank.DistanceKm(center, pos) <= radiusKm {
			stations = append(stations, st)
		}
	}

	r.logger.Debug("Nearby stations",
		zap.Int("candidates", len(rows)),
		zap.Int("within_radius", len(stations)),
	)

	return stations, nil
}

func (r *gasStationRepository) GetByID(ctx context.Context, id int64) (*domain.GasStation, error) {
	query := `SELECT ` + gasStationColumns + `
		FROM gas_stations
		WHERE id = $1`

	var row gasStationRow
	err := r.db.GetContext(ctx, &row, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrStationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get station by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	st := row.toDomain()
	return &st, nil
}

func toStations(rows []gasStationRow) []domain.GasStation {
	stations := make([]domain.GasStation, len(rows))
	for i, row := range rows {
		stations[i] = row.toDomain()
	}
	return stations
}
