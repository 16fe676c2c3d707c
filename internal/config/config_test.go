package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuelpark-service/internal/config"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.Equal(t, 15.0, cfg.Search.NearbyRadiusKm)
	assert.Equal(t, 20, cfg.Loyalty.PointsPerReceipt)
	assert.Equal(t, 120, cfg.Loyalty.WelcomePoints)
	assert.Equal(t, "loyalty-workers", cfg.Worker.ConsumerGroup)
	assert.Equal(t, 30*time.Second, cfg.Worker.ClaimMinIdle)
	assert.Equal(t, 200, cfg.Loyalty.RewardPoints)
	assert.Equal(t, 24*time.Hour, cfg.Cache.LocalityCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestLoadFrom_DotEnvAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_PORT=9090\nDB_NAME=fuel_test\nNEARBY_RADIUS_KM=7.5\nCORS_ALLOW_ORIGINS=http://a.test, http://b.test\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("LOYALTY_POINTS_PER_RECEIPT", "35")

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 7.5, cfg.Search.NearbyRadiusKm)
	assert.Equal(t, 35, cfg.Loyalty.PointsPerReceipt)
	assert.Contains(t, cfg.GetDatabaseDSN(), "dbname=fuel_test")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins())
}
