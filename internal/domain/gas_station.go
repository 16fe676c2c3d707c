package domain

import (
	"strconv"
	"time"

	"github.com/fuelpark-service/internal/pkg/georank"
)

// FuelType - ключ цены топлива, как в колонках таблицы gas_stations
type FuelType string

const (
	FuelGasolina95E5   FuelType = "gasolina95E5"
	FuelGasolina95E10  FuelType = "gasolina95E10"
	FuelGasolina98E5   FuelType = "gasolina98E5"
	FuelGasolina98E10  FuelType = "gasolina98E10"
	FuelGasoleoA       FuelType = "gasoleoA"
	FuelGasoleoB       FuelType = "gasoleoB"
	FuelGasoleoPremium FuelType = "gasoleoPremium"
)

// DefaultFuelType - G95, the default selection in the client
const DefaultFuelType = FuelGasolina95E5

// FuelTypes - all supported fuel types in display order
var FuelTypes = []FuelType{
	FuelGasolina95E5,
	FuelGasolina95E10,
	FuelGasolina98E5,
	FuelGasolina98E10,
	FuelGasoleoA,
	FuelGasoleoB,
	FuelGasoleoPremium,
}

// IsValidFuelType проверяет, поддерживается ли тип топлива
func IsValidFuelType(f string) bool {
	for _, ft := range FuelTypes {
		if string(ft) == f {
			return true
		}
	}
	return false
}

// GasStation - заправочная станция с ценами по типам топлива.
// Lat/Lon равны нулю, если координаты в источнике отсутствуют или не распознаны.
type GasStation struct {
	ID        int64                `json:"id" db:"id"`
	Address   string               `json:"address" db:"direccion"`
	Locality  string               `json:"locality" db:"localidad"`
	Province  string               `json:"province" db:"provincia"`
	Brand     string               `json:"brand,omitempty" db:"rotulo"`
	Service   string               `json:"service,omitempty" db:"servicio"`
	Schedule  string               `json:"schedule,omitempty" db:"horario"`
	Lat       float64              `json:"lat"`
	Lon       float64              `json:"lon"`
	Prices    map[FuelType]float64 `json:"prices"`
	UpdatedAt time.Time            `json:"updated_at" db:"updated_at"`
}

var _ georank.Entity = GasStation{}

func (s GasStation) EntityID() string {
	return strconv.FormatInt(s.ID, 10)
}

func (s GasStation) Position() (georank.Coordinate, bool) {
	c := georank.Coordinate{Lat: s.Lat, Lon: s.Lon}
	return c, !c.IsZero()
}

// Attribute returns the price for the fuel type named by key
func (s GasStation) Attribute(key string) (float64, bool) {
	v, ok := s.Prices[FuelType(key)]
	return v, ok
}

// Price - цена выбранного топлива, nil если станция его не продаёт
func (s GasStation) Price(f FuelType) *float64 {
	v, ok := s.Prices[f]
	if !ok {
		return nil
	}
	return &v
}
