package domain

import "strings"

// SortType - порядок выдачи списков
type SortType string

const (
	SortByDistance SortType = "distance"
	SortByPrice    SortType = "price"
	SortBySlots    SortType = "slots"
)

// sortAliases - spanish names sent by older mobile clients
var sortAliases = map[string]SortType{
	"distance":  SortByDistance,
	"distancia": SortByDistance,
	"price":     SortByPrice,
	"precio":    SortByPrice,
	"slots":     SortBySlots,
	"plazas":    SortBySlots,
}

// ParseSortType normalizes a sort name; empty input yields def.
func ParseSortType(s string, def SortType) (SortType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return def, true
	}
	st, ok := sortAliases[s]
	return st, ok
}
