package domain

import (
	"math"

	"github.com/fuelpark-service/internal/pkg/georank"
)

// BoundingBox - прямоугольник для грубой фильтрации по координатам
type BoundingBox struct {
	MinLat float64 `json:"min_lat" db:"min_lat"`
	MinLon float64 `json:"min_lon" db:"min_lon"`
	MaxLat float64 `json:"max_lat" db:"max_lat"`
	MaxLon float64 `json:"max_lon" db:"max_lon"`
}

// BoundingBoxAround returns a box that contains every point within radiusKm
// of the center. Used only as a coarse SQL pre-filter, so it is padded by 1%.
// A circle that reaches a pole or crosses the antimeridian gets the full
// longitude range; the exact distance filter trims the extra rows.
func BoundingBoxAround(lat, lon, radiusKm float64) BoundingBox {
	kmPerDegree := georank.EarthRadiusKm * math.Pi / 180
	radiusKm *= 1.01

	dLat := radiusKm / kmPerDegree
	box := BoundingBox{
		MinLat: math.Max(lat-dLat, -90),
		MaxLat: math.Min(lat+dLat, 90),
		MinLon: -180,
		MaxLon: 180,
	}
	if lat-dLat <= -90 || lat+dLat >= 90 {
		return box
	}

	cosLat := math.Cos(lat * math.Pi / 180)
	dLon := radiusKm / (kmPerDegree * cosLat)
	if lon-dLon < -180 || lon+dLon > 180 {
		return box
	}

	box.MinLon, box.MaxLon = lon-dLon, lon+dLon
	return box
}
