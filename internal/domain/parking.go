package domain

import (
	"time"

	"github.com/fuelpark-service/internal/pkg/georank"
)

// Parking attribute keys usable for ranking
const (
	ParkingAttrPrice = "price"
	ParkingAttrSlots = "slots"
)

// ParkingLot - парковка с ценой и количеством свободных мест
type ParkingLot struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Address     string    `json:"address" db:"address"`
	Description string    `json:"description,omitempty" db:"description"`
	Lat         float64   `json:"lat"`
	Lon         float64   `json:"lon"`
	Price       *float64  `json:"price,omitempty"`
	Slots       *int      `json:"slots,omitempty" db:"slots"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

var _ georank.Entity = ParkingLot{}

func (p ParkingLot) EntityID() string {
	return p.ID
}

func (p ParkingLot) Position() (georank.Coordinate, bool) {
	c := georank.Coordinate{Lat: p.Lat, Lon: p.Lon}
	return c, !c.IsZero()
}

func (p ParkingLot) Attribute(key string) (float64, bool) {
	switch key {
	case ParkingAttrPrice:
		if p.Price == nil {
			return 0, false
		}
		return *p.Price, true
	case ParkingAttrSlots:
		if p.Slots == nil {
			return 0, false
		}
		return float64(*p.Slots), true
	}
	return 0, false
}

// HasFreeSlots - есть ли свободные места. Неизвестное количество считается свободным.
func (p ParkingLot) HasFreeSlots() bool {
	return p.Slots == nil || *p.Slots > 0
}
