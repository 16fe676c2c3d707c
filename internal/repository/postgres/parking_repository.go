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
	"github.com/fuelpark-service/internal/pkg/utils"
)

const parkingColumns = `id, name, address, description, latitude, longitude, price, slots, updated_at`

type parkingRow struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Address     string          `db:"address"`
	Description string          `db:"description"`
	Latitude    sql.NullFloat64 `db:"latitude"`
	Longitude   sql.NullFloat64 `db:"longitude"`
	Price       sql.NullString  `db:"price"`
	Slots       sql.NullInt32   `db:"slots"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r parkingRow) toDomain() domain.ParkingLot {
	p := domain.ParkingLot{
		ID:          r.ID,
		Name:        r.Name,
		Address:     r.Address,
		Description: r.Description,
		UpdatedAt:   r.UpdatedAt,
	}

	if r.Latitude.Valid && r.Longitude.Valid && utils.ValidateCoordinates(r.Latitude.Float64, r.Longitude.Float64) {
		p.Lat, p.Lon = r.Latitude.Float64, r.Longitude.Float64
	}
	if r.Price.Valid {
		p.Price = utils.ParseDecimalPtr(&r.Price.String)
	}
	if r.Slots.Valid {
		slots := int(r.Slots.Int32)
		p.Slots = &slots
	}
	return p
}

type parkingRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewParkingRepository(db *DB) repository.ParkingRepository {
	return &parkingRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *parkingRepository) List(ctx context.Context) ([]domain.ParkingLot, error) {
	query := `SELECT ` + parkingColumns + ` FROM parking_lots ORDER BY id`

	var rows []parkingRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.logger.Error("Failed to list parkings", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	lots := make([]domain.ParkingLot, len(rows))
	for i, row := range rows {
		lots[i] = row.toDomain()
	}
	return lots, nil
}

func (r *parkingRepository) GetByID(ctx context.Context, id string) (*domain.ParkingLot, error) {
	query := `SELECT ` + parkingColumns + ` FROM parking_lots WHERE id = $1`

	var row parkingRow
	err := r.db.GetContext(ctx, &row, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrParkingNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get parking by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	p := row.toDomain()
	return &p, nil
}
