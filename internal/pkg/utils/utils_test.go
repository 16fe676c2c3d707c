package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fuelpark-service/internal/pkg/utils"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1,459", 1.459, true},
		{"1.459", 1.459, true},
		{" 40,416775 ", 40.416775, true},
		{"-3,703790", -3.70379, true},
		{"", 0, false},
		{"-", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"1,2,3", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := utils.ParseDecimal(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestParseDecimalPtr(t *testing.T) {
	assert.Nil(t, utils.ParseDecimalPtr(nil))

	bad := "n/a"
	assert.Nil(t, utils.ParseDecimalPtr(&bad))

	good := "2,35"
	got := utils.ParseDecimalPtr(&good)
	if assert.NotNil(t, got) {
		assert.InDelta(t, 2.35, *got, 1e-9)
	}
}

func TestReferencePoint(t *testing.T) {
	lat, lon := 40.4168, -3.7038
	zero := 0.0
	bad := 200.0

	ref := utils.ReferencePoint(&lat, &lon)
	if assert.NotNil(t, ref) {
		assert.Equal(t, lat, ref.Lat)
		assert.Equal(t, lon, ref.Lon)
	}

	assert.Nil(t, utils.ReferencePoint(nil, &lon))
	assert.Nil(t, utils.ReferencePoint(&lat, nil))
	assert.Nil(t, utils.ReferencePoint(&zero, &zero))
	assert.Nil(t, utils.ReferencePoint(&bad, &lon))
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(90, -180))
	assert.False(t, utils.ValidateCoordinates(90.01, 0))
	assert.False(t, utils.ValidateCoordinates(0, 181))
	assert.True(t, utils.ValidateRadius(15))
	assert.False(t, utils.ValidateRadius(0))
}

func TestNavigationURLs(t *testing.T) {
	links := utils.NavigationURLs(40.4168, -3.7038, "Repsol Gran Vía")

	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=40.416800,-3.703800", links.GoogleMaps)
	assert.Equal(t, "maps:0,0?q=Repsol+Gran+V%C3%ADa@40.416800,-3.703800", links.AppleMaps)
	assert.Equal(t, "geo:0,0?q=40.416800,-3.703800(Repsol+Gran+V%C3%ADa)", links.Android)
}
