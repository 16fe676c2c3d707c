// Package georank orders located entities by great-circle distance from a
// reference point or by one of their numeric attributes.
//
// Every function is pure: inputs are never mutated, nothing is retained
// between calls and nothing is logged. Entities whose position or sort key is
// unknown are never dropped, they are moved to the end in input order.
package georank

import (
	"math"
	"slices"
)

// EarthRadiusKm - mean Earth radius used by the haversine formula
const EarthRadiusKm = 6371.0

// distanceToleranceKm - distances are compared on a grid of this step, so
// values that round to the same step are ties
const distanceToleranceKm = 1e-9

// Direction - sort direction for RankByAttribute
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String implements fmt.Stringer
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ParseDirection maps "asc"/"desc" to a Direction; anything else yields def.
func ParseDirection(s string, def Direction) Direction {
	switch s {
	case "asc", "ASC":
		return Ascending
	case "desc", "DESC":
		return Descending
	}
	return def
}

// Coordinate - WGS-84 point in decimal degrees
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// InRange reports whether both components are finite and inside
// [-90, 90] x [-180, 180].
func (c Coordinate) InRange() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lon, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// IsZero reports whether c is the zero value, which records use before their
// position has been populated.
func (c Coordinate) IsZero() bool {
	return c.Lat == 0 && c.Lon == 0
}

// Valid reports whether c can be used as a position: in range and populated.
func (c Coordinate) Valid() bool {
	return c.InRange() && !c.IsZero()
}

// Entity is anything with an identifier, an optional position and optional
// numeric attributes.
type Entity interface {
	EntityID() string
	Position() (Coordinate, bool)
	Attribute(key string) (float64, bool)
}

// DistanceKm returns the haversine distance between two points in kilometers.
// Points outside the valid coordinate range yield +Inf.
func DistanceKm(ref, target Coordinate) float64 {
	if !ref.InRange() || !target.InRange() {
		return math.Inf(1)
	}
	if ref == target {
		return 0
	}

	lat1 := toRadians(ref.Lat)
	lat2 := toRadians(target.Lat)
	dLat := toRadians(target.Lat - ref.Lat)
	dLon := toRadians(target.Lon - ref.Lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// rounding can push a slightly outside [0, 1] for antipodal points
	a = math.Min(math.Max(a, 0), 1)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Distance returns the distance from ref to the entity. ok is false when the
// distance is undefined: no reference, no entity position, or an invalid
// coordinate on either side.
func Distance(ref *Coordinate, e Entity) (km float64, ok bool) {
	if ref == nil || !ref.Valid() {
		return 0, false
	}
	pos, has := e.Position()
	if !has || !pos.Valid() {
		return 0, false
	}
	return DistanceKm(*ref, pos), true
}

type keyed[T any] struct {
	item  T
	key   float64
	known bool
}

// RankByDistance returns a new slice ordered by ascending distance from ref.
// A nil reference returns the entities in their original order. Entities with
// an unknown position come last, in input order. Ties keep input order.
func RankByDistance[T Entity](ref *Coordinate, entities []T) []T {
	if ref == nil {
		return slices.Clone(nonNil(entities))
	}

	ks := make([]keyed[T], len(entities))
	for i, e := range entities {
		d, ok := Distance(ref, e)
		ks[i] = keyed[T]{item: e, key: distanceKey(d), known: ok}
	}

	return sortKeyed(ks, Ascending)
}

// distanceKey snaps d to the tolerance grid. Equality of snapped keys is an
// equivalence relation, unlike |a-b| <= tolerance.
func distanceKey(d float64) float64 {
	return math.Round(d / distanceToleranceKm)
}

// RankByAttribute returns a new slice ordered by the attribute key in the
// given direction. Entities lacking the attribute come last, in input order.
// Equal values keep input order.
func RankByAttribute[T Entity](entities []T, key string, dir Direction) []T {
	ks := make([]keyed[T], len(entities))
	for i, e := range entities {
		v, ok := e.Attribute(key)
		if ok && math.IsNaN(v) {
			ok = false
		}
		ks[i] = keyed[T]{item: e, key: v, known: ok}
	}

	return sortKeyed(ks, dir)
}

func sortKeyed[T any](ks []keyed[T], dir Direction) []T {
	slices.SortStableFunc(ks, func(a, b keyed[T]) int {
		switch {
		case a.known && !b.known:
			return -1
		case !a.known && b.known:
			return 1
		case !a.known && !b.known:
			return 0
		}

		if a.key == b.key {
			return 0
		}
		less := a.key < b.key
		if dir == Descending {
			less = !less
		}
		if less {
			return -1
		}
		return 1
	})

	out := make([]T, len(ks))
	for i, k := range ks {
		out[i] = k.item
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
