package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fuelpark-service/internal/usecase/dto"
)

type MockGasStationService struct {
	mock.Mock
}

func (m *MockGasStationService) ListProvinces(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGasStationService) ListLocalities(ctx context.Context, province string) ([]string, error) {
	args := m.Called(ctx, province)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGasStationService) ListByLocality(ctx context.Context, req dto.StationListRequest) (*dto.StationListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StationListResponse), args.Error(1)
}

func (m *MockGasStationService) ListNearby(ctx context.Context, req dto.NearbyStationsRequest) (*dto.StationListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StationListResponse), args.Error(1)
}

func (m *MockGasStationService) GetByID(ctx context.Context, req dto.StationDetailRequest) (*dto.StationItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StationItem), args.Error(1)
}

type MockParkingService struct {
	mock.Mock
}

func (m *MockParkingService) List(ctx context.Context, req dto.ParkingListRequest) (*dto.ParkingListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ParkingListResponse), args.Error(1)
}

func (m *MockParkingService) GetByID(ctx context.Context, req dto.ParkingDetailRequest) (*dto.ParkingItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ParkingItem), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (*dto.PasswordChangedResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PasswordChangedResponse), args.Error(1)
}

type MockLoyaltyService struct {
	mock.Mock
}

func (m *MockLoyaltyService) GetBalance(ctx context.Context, userID uuid.UUID) (*dto.LoyaltyBalanceResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoyaltyBalanceResponse), args.Error(1)
}

func (m *MockLoyaltyService) ScanReceipt(ctx context.Context, userID uuid.UUID) (*dto.ScanReceiptResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ScanReceiptResponse), args.Error(1)
}

// envelope - общий формат ответа API
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), string(body))
	return env
}

func ptrFloat64(v float64) *float64 {
	return &v
}
