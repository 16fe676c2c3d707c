package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/fuelpark-service/internal/domain"
	"github.com/fuelpark-service/internal/pkg/utils"
)

// StationItem - заправка в выдаче
type StationItem struct {
	ID         int64                       `json:"id"`
	Address    string                      `json:"address"`
	Locality   string                      `json:"locality"`
	Province   string                      `json:"province"`
	Brand      string                      `json:"brand,omitempty"`
	Service    string                      `json:"service,omitempty"`
	Schedule   string                      `json:"schedule,omitempty"`
	Lat        *float64                    `json:"lat,omitempty"`
	Lon        *float64                    `json:"lon,omitempty"`
	Fuel       domain.FuelType             `json:"fuel"`
	Price      *float64                    `json:"price,omitempty"`
	Prices     map[domain.FuelType]float64 `json:"prices"`
	DistanceKm *float64                    `json:"distance_km,omitempty"`
	MapsURL    string                      `json:"maps_url,omitempty"`
}

// StationListResponse - список заправок
type StationListResponse struct {
	Stations []StationItem `json:"stations"`
	Total    int           `json:"total"`
	Sort     string        `json:"sort"`
	Order    string        `json:"order"`
	Fuel     string        `json:"fuel"`
}

// ParkingItem - парковка в выдаче
type ParkingItem struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Address      string                 `json:"address"`
	Description  string                 `json:"description,omitempty"`
	Lat          *float64               `json:"lat,omitempty"`
	Lon          *float64               `json:"lon,omitempty"`
	Price        *float64               `json:"price,omitempty"`
	Slots        *int                   `json:"slots,omitempty"`
	HasFreeSlots bool                   `json:"has_free_slots"`
	DistanceKm   *float64               `json:"distance_km,omitempty"`
	Navigation   *utils.NavigationLinks `json:"navigation,omitempty"`
}

// ParkingListResponse - список парковок
type ParkingListResponse struct {
	Parkings []ParkingItem `json:"parkings"`
	Total    int           `json:"total"`
	Sort     string        `json:"sort"`
	Order    string        `json:"order"`
}

// AuthResponse - результат регистрации или входа
type AuthResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Points   int       `json:"points"`
}

// PasswordChangedResponse - пароль обновлён
type PasswordChangedResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

// LoyaltyBalanceResponse - баланс баллов и прогресс до следующей награды
type LoyaltyBalanceResponse struct {
	UserID          uuid.UUID `json:"user_id"`
	Points          int       `json:"points"`
	RewardPoints    int       `json:"reward_points"`
	PointsToReward  int       `json:"points_to_reward"`
	RewardAvailable bool      `json:"reward_available"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ScanReceiptResponse - чек принят, баллы будут начислены воркером
type ScanReceiptResponse struct {
	ScanID    uuid.UUID `json:"scan_id"`
	UserID    uuid.UUID `json:"user_id"`
	Points    int       `json:"points"`
	MessageID string    `json:"message_id"`
	Status    string    `json:"status"`
}

// ScanStatusPending - баллы ещё не начислены
const ScanStatusPending = "pending"

// NewStationItem собирает элемент выдачи. distanceKm nil, если расстояние неизвестно.
func NewStationItem(st domain.GasStation, fuel domain.FuelType, distanceKm *float64) StationItem {
	item := StationItem{
		ID:         st.ID,
		Address:    st.Address,
		Locality:   st.Locality,
		Province:   st.Province,
		Brand:      st.Brand,
		Service:    st.Service,
		Schedule:   st.Schedule,
		Fuel:       fuel,
		Price:      st.Price(fuel),
		Prices:     st.Prices,
		DistanceKm: distanceKm,
	}
	if pos, ok := st.Position(); ok {
		item.Lat, item.Lon = &pos.Lat, &pos.Lon
		item.MapsURL = utils.MapsURL(pos.Lat, pos.Lon)
	}
	return item
}

// NewParkingItem собирает элемент выдачи парковки
func NewParkingItem(p domain.ParkingLot, distanceKm *float64) ParkingItem {
	item := ParkingItem{
		ID:           p.ID,
		Name:         p.Name,
		Address:      p.Address,
		Description:  p.Description,
		Price:        p.Price,
		Slots:        p.Slots,
		HasFreeSlots: p.HasFreeSlots(),
		DistanceKm:   distanceKm,
	}
	if pos, ok := p.Position(); ok {
		item.Lat, item.Lon = &pos.Lat, &pos.Lon
		links := utils.NavigationURLs(pos.Lat, pos.Lon, p.Name)
		item.Navigation = &links
	}
	return item
}
