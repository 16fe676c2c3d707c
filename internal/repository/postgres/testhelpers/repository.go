package testhelpers

import (
	"testing"

	"github.com/fuelpark-service/internal/repository/postgres"
)

const (
	MigrationsPath = "../../../migrations"
	FixturesPath   = "../../../testdata/fixtures"
)

// SetupSeededDB подключается, применяет миграции и загружает базовые фикстуры
func SetupSeededDB(t *testing.T) (*TestDB, *postgres.DB) {
	t.Helper()

	tdb := SetupTestDB(t)
	if err := ApplyMigrations(tdb.DB.DB, MigrationsPath); err != nil {
		tdb.Close()
		t.Fatalf("apply migrations: %v", err)
	}
	if err := LoadFixtures(tdb.DB.DB, FixturesPath, "stations.sql"); err != nil {
		tdb.Close()
		t.Fatalf("load fixtures: %v", err)
	}

	return tdb, postgres.Wrap(tdb.DB, tdb.Logger)
}
