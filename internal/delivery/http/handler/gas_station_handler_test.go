package handler_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fuelpark-service/internal/delivery/http/handler"
	"github.com/fuelpark-service/internal/pkg/errors"
	"github.com/fuelpark-service/internal/usecase/dto"
)

func newGasStationApp(svc *MockGasStationService) *fiber.App {
	h := handler.NewGasStationHandler(svc, zap.NewNop())
	app := fiber.New()
	app.Get("/gas-stations/provinces", h.ListProvinces)
	app.Get("/gas-stations/localities", h.ListLocalities)
	app.Get("/gas-stations/nearby", h.Nearby)
	app.Get("/gas-stations/:id", h.Get)
	app.Get("/gas-stations", h.List)
	return app
}

func TestGasStationHandler_ListProvinces(t *testing.T) {
	svc := new(MockGasStationService)
	svc.On("ListProvinces", mock.Anything).Return([]string{"ÁLAVA", "MADRID"}, nil)

	resp, err := newGasStationApp(svc).Test(httptest.NewRequest("GET", "/gas-stations/provinces", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decode(t, resp)
	assert.JSONEq(t, `{"provinces":["ÁLAVA","MADRID"]}`, string(env.Data))
	assert.EqualValues(t, 2, env.Meta["total"])
}

func TestGasStationHandler_ListLocalities_PassesProvince(t *testing.T) {
	svc := new(MockGasStationService)
	svc.On("ListLocalities", mock.Anything, "MADRID").Return([]string{"ALCOBENDAS", "MADRID"}, nil)

	resp, err := newGasStationApp(svc).Test(httptest.NewRequest("GET", "/gas-stations/localities?province=MADRID", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestGasStationHandler_ListLocalities_Error(t *testing.T) {
	svc := new(MockGasStationService)
	svc.On("ListLocalities", mock.Anything, "").Return(nil, errors.ErrInvalidRequest)

	resp, err := newGasStationApp(svc).Test(httptest.NewRequest("GET", "/gas-stations/localities", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, errors.ErrInvalidRequest.Code, decode(t, resp).Error.Code)
}

func TestGasStationHandler_List(t *testing.T) {
	t.Run("decimal comma coordinates", func(t *testing.T) {
		svc := new(MockGasStationService)
		expected := dto.StationListRequest{
			Locality: "MADRID",
			Lat:      ptrFloat64(40.4168),
			Lon:      ptrFloat64(-3.7038),
			Sort:     "price",
			Fuel:     "gasoleoA",
			Order:    "desc",
		}
		svc.On("ListByLocality", mock.Anything, expected).Return(&dto.StationListResponse{
			Stations: []dto.StationItem{{ID: 1001}},
			Total:    1,
			Sort:     "price",
		}, nil)

		req := httptest.NewRequest("GET", "/gas-stations?locality=MADRID&lat=40,4168&lon=-3.7038&sort=price&fuel=gasoleoA&order=desc", nil)
		resp, err := newGasStationApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		env := decode(t, resp)
		assert.Equal(t, "price", env.Meta["sort"])
		svc.AssertExpectations(t)
	})

	t.Run("unparsable coordinates mean no reference", func(t *testing.T) {
		svc := new(MockGasStationService)
		svc.On("ListByLocality", mock.Anything, dto.StationListRequest{Locality: "MADRID"}).
			Return(&dto.StationListResponse{Stations: []dto.StationItem{}}, nil)

		resp, err := newGasStationApp(svc).Test(httptest.NewRequest("GET", "/gas-stations?locality=MADRID&lat=abc", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("locality is required", func(t *testing.T) {
		svc := new(MockGasStationService)

		resp, err := newGasStationApp(svc).Test(httptest.NewRequest("GET", "/gas-stations", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		env := decode(t, resp)
		assert.Equal(t, errors.ErrInvalidRequest.Code, env.Error.Code)
		assert.Equal(t, "required", env.Error.Details["Locality"])
		svc.AssertNotCalled(t, "ListByLocality", mock.Anything, mock.Anything)
	})

	t.Run("bad order", func(t *testing.T) {
		svc := new(MockGasStationService)

		resp, err := newGasStationApp(svc).Test(httptest.NewRequest("GET", "/gas-stations?locality=MADRID&order=up", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("usecase error", func(t *testing.T) {
		svc := new(MockGasStationService)
		svc.On("ListByLocality", mock.Anything, mock.Anything).Return(nil, errors.ErrInvalidSort)

		resp, err := newGasStationApp(svc).Test(httptest.NewRequest("GET", "/gas-stations?locality=MADRID&sort=slots", nil))
		require.NoError(t, err)
		assert.Equal(t, errors.ErrInvalidSort.StatusCode, resp.StatusCode)
		assert.Equal(t, errors.ErrInvalidSort.Code, decode(t, resp).Error.Code)
	})
}

func TestGasStationHandler_Nearby(t *testing.T) {
	t.Run("ok with radius", func(t *testing.T) {
		svc := new(MockGasStationService)
		expected := dto.NearbyStationsRequest{Lat: 40.4168, Lon: -3.7038, RadiusKm: 5}
		svc.On("ListNearby", mock.Anything, expected).Return(&dto.StationListResponse{
			Stations: []dto.StationItem{},
			Sort:     "distance",
		}, nil)

		resp, err := newGasStationApp(svc).Test(httptest.NewRequest("GET", "/gas-stations/nearby?lat=40.4168&lon=-3.7038&radius_km=5", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		svc := new(MockGasStationService)

		resp, err := newGasStationApp(svc).Test(httptest.NewRequest("GET", "/gas-stations/nearby?lat=40.4", nil))
		require.NoError(t, err)
		assert.Equal(t, errors.ErrInvalidCoordinates.StatusCode, resp.StatusCode)
		assert.Equal(t, errors.ErrInvalidCoordinates.Code, decode(t, resp).Error.Code)
	})

	t.Run("unparsable radius", func(t *testing.T) {
		svc := new(MockGasStationService)

		resp, err := newGasStationApp(svc).Test(httptest.NewRequest("GET", "/gas-stations/nearby?lat=40.4&lon=-3.7&radius_km=far", nil))
		require.NoError(t, err)
		assert.Equal(t, errors.ErrInvalidRadius.Code, decode(t, resp).Error.Code)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		svc := new(MockGasStationService)

		resp, err := newGasStationApp(svc).Test(httptest.NewRequest("GET", "/gas-stations/nearby?lat=95&lon=-3.7", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "ListNearby", mock.Anything, mock.Anything)
	})
}

func TestGasStationHandler_Get(t *testing.T) {
	t.Run("with reference point", func(t *testing.T) {
		svc := new(MockGasStationService)
		distance := 1.25
		svc.On("GetByID", mock.Anything, dto.StationDetailRequest{
			ID:   4375,
			Lat:  ptrFloat64(40.4168),
			Lon:  ptrFloat64(-3.7038),
			Fuel: "gasoleoA",
		}).Return(&dto.StationItem{ID: 4375, Fuel: "gasoleoA", DistanceKm: &distance}, nil)

		resp, err := newGasStationApp(svc).Test(httptest.NewRequest("GET", "/gas-stations/4375?lat=40.4168&lon=-3.7038&fuel=gasoleoA", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, string(decode(t, resp).Data), `"distance_km":1.25`)
		svc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockGasStationService)
		svc.On("GetByID", mock.Anything, mock.Anything).Return(nil, errors.ErrStationNotFound)

		resp, err := newGasStationApp(svc).Test(httptest.NewRequest("GET", "/gas-stations/99", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, errors.ErrStationNotFound.Code, decode(t, resp).Error.Code)
	})

	t.Run("non numeric id", func(t *testing.T) {
		svc := new(MockGasStationService)

		resp, err := newGasStationApp(svc).Test(httptest.NewRequest("GET", "/gas-stations/abc", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("static routes are not ids", func(t *testing.T) {
		svc := new(MockGasStationService)
		svc.On("ListProvinces", mock.Anything).Return([]string{}, nil)

		resp, err := newGasStationApp(svc).Test(httptest.NewRequest("GET", "/gas-stations/provinces", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
