package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fuelpark-service/internal/domain"
	"github.com/fuelpark-service/internal/domain/repository"
	"github.com/fuelpark-service/internal/pkg/errors"
	"github.com/fuelpark-service/internal/repository/postgres"
	"github.com/fuelpark-service/internal/repository/postgres/testhelpers"
)

type GasStationRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.GasStationRepository
	ctx    context.Context
}

func (s *GasStationRepositorySuite) SetupSuite() {
	tdb, db := testhelpers.SetupSeededDB(s.T())
	s.testDB = tdb
	s.repo = postgres.NewGasStationRepository(db)
}

func (s *GasStationRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *GasStationRepositorySuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *GasStationRepositorySuite) TestListProvinces() {
	provinces, err := s.repo.ListProvinces(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"BARCELONA", "MADRID"}, provinces)
}

func (s *GasStationRepositorySuite) TestListLocalities() {
	localities, err := s.repo.ListLocalities(s.ctx, "MADRID")
	s.Require().NoError(err)
	s.Equal([]string{"ALCOBENDAS", "MADRID"}, localities)

	localities, err = s.repo.ListLocalities(s.ctx, "TERUEL")
	s.Require().NoError(err)
	s.Empty(localities)
}

func (s *GasStationRepositorySuite) TestGetByLocality_NormalizesFeedValues() {
	stations, err := s.repo.GetByLocality(s.ctx, "MADRID")
	s.Require().NoError(err)
	s.Require().Len(stations, 3)

	alcala := stations[0]
	s.Equal(int64(1001), alcala.ID)
	s.InDelta(40.42492, alcala.Lat, 1e-9)
	s.InDelta(-3.6749, alcala.Lon, 1e-9)
	s.InDelta(1.559, alcala.Prices[domain.FuelGasolina95E5], 1e-9)
	s.InDelta(1.479, alcala.Prices[domain.FuelGasoleoA], 1e-9)

	castellana := stations[1]
	s.NotContains(castellana.Prices, domain.FuelGasolina98E5, "empty price is missing")

	// станция без координат не отбрасывается
	noCoords := stations[2]
	s.Equal(int64(1003), noCoords.ID)
	_, ok := noCoords.Position()
	s.False(ok)
}

func (s *GasStationRepositorySuite) TestGetNearby() {
	// Puerta del Sol
	stations, err := s.repo.GetNearby(s.ctx, 40.4168, -3.7038, 10)
	s.Require().NoError(err)

	ids := make([]int64, 0, len(stations))
	for _, st := range stations {
		ids = append(ids, st.ID)
	}
	s.ElementsMatch([]int64{1001, 1002}, ids)

	stations, err = s.repo.GetNearby(s.ctx, 40.4168, -3.7038, 20)
	s.Require().NoError(err)
	s.Len(stations, 3, "Alcobendas is ~15 km away")
}

func (s *GasStationRepositorySuite) TestGetByID() {
	st, err := s.repo.GetByID(s.ctx, 2001)
	s.Require().NoError(err)
	s.Equal("BARCELONA", st.Locality)
	s.Equal("GALP", st.Brand)

	_, err = s.repo.GetByID(s.ctx, 999999)
	s.ErrorIs(err, errors.ErrStationNotFound)
}

func TestGasStationRepositorySuite(t *testing.T) {
	suite.Run(t, new(GasStationRepositorySuite))
}
