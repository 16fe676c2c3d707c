package utils

import "github.com/fuelpark-service/internal/pkg/georank"

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return georank.Coordinate{Lat: lat, Lon: lon}.InRange()
}

// ValidateRadius проверяет валидность радиуса (0.1 - 100 км)
func ValidateRadius(radiusKm float64) bool {
	return radiusKm >= 0.1 && radiusKm <= 100
}

// ReferencePoint builds the ranking reference from optional request
// coordinates. Both must be present and valid, otherwise there is no reference.
func ReferencePoint(lat, lon *float64) *georank.Coordinate {
	if lat == nil || lon == nil {
		return nil
	}
	ref := georank.Coordinate{Lat: *lat, Lon: *lon}
	if !ref.Valid() {
		return nil
	}
	return &ref
}
