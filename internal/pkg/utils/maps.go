package utils

import (
	"fmt"
	"net/url"
)

// NavigationLinks - deep links the mobile client opens for a location
type NavigationLinks struct {
	GoogleMaps string `json:"google_maps"`
	AppleMaps  string `json:"apple_maps"`
	Android    string `json:"android"`
}

// MapsURL returns the Google Maps search URL for a point. iOS hands it to the
// Google Maps app when installed.
func MapsURL(lat, lon float64) string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%s", latLng(lat, lon))
}

// NavigationURLs builds all deep links for a labelled point
func NavigationURLs(lat, lon float64, label string) NavigationLinks {
	ll := latLng(lat, lon)
	q := url.QueryEscape(label)

	return NavigationLinks{
		GoogleMaps: MapsURL(lat, lon),
		AppleMaps:  fmt.Sprintf("maps:0,0?q=%s@%s", q, ll),
		Android:    fmt.Sprintf("geo:0,0?q=%s(%s)", ll, q),
	}
}

func latLng(lat, lon float64) string {
	return fmt.Sprintf("%s,%s", formatCoord(lat), formatCoord(lon))
}

func formatCoord(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
