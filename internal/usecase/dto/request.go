package dto

// StationListRequest - список заправок населённого пункта.
// Lat/Lon необязательны: без них сортировка по расстоянию сохраняет исходный порядок.
type StationListRequest struct {
	Locality string   `json:"locality" validate:"required,max=128"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
	Sort     string   `json:"sort,omitempty"`
	Fuel     string   `json:"fuel,omitempty"`
	Order    string   `json:"order,omitempty" validate:"omitempty,oneof=asc desc"`
}

// NearbyStationsRequest - заправки в радиусе от точки
type NearbyStationsRequest struct {
	Lat      float64 `json:"lat" validate:"min=-90,max=90"`
	Lon      float64 `json:"lon" validate:"min=-180,max=180"`
	RadiusKm float64 `json:"radius_km,omitempty" validate:"omitempty,min=0.1,max=100"`
	Sort     string  `json:"sort,omitempty"`
	Fuel     string  `json:"fuel,omitempty"`
	Order    string  `json:"order,omitempty" validate:"omitempty,oneof=asc desc"`
}

// StationDetailRequest - одна заправка. С lat/lon в ответе есть distance_km.
type StationDetailRequest struct {
	ID   int64    `json:"id" validate:"min=1"`
	Lat  *float64 `json:"lat,omitempty"`
	Lon  *float64 `json:"lon,omitempty"`
	Fuel string   `json:"fuel,omitempty"`
}

// ParkingListRequest - список парковок
type ParkingListRequest struct {
	Lat   *float64 `json:"lat,omitempty"`
	Lon   *float64 `json:"lon,omitempty"`
	Sort  string   `json:"sort,omitempty"`
	Order string   `json:"order,omitempty" validate:"omitempty,oneof=asc desc"`
}

// ParkingDetailRequest - одна парковка
type ParkingDetailRequest struct {
	ID  string   `json:"id" validate:"required,max=64"`
	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`
}

// RegisterRequest - регистрация пользователя
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	// bcrypt использует только первые 72 байта
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest - вход пользователя
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest - смена пароля по текущему паролю
type ChangePasswordRequest struct {
	Username        string `json:"username" validate:"required"`
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=72"`
}
