package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
	Search   SearchConfig
	Loyalty  LoyaltyConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	LocalityCacheTTL time.Duration
	LRUSize          int
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	BatchSize     int
	MaxRetries    int
	ClaimMinIdle  time.Duration
}

type SearchConfig struct {
	NearbyRadiusKm float64
}

type LoyaltyConfig struct {
	PointsPerReceipt int
	WelcomePoints    int
	RewardPoints     int
}

// Load reads .env from the working directory (if present) and the process
// environment.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path. A missing file is not an
// error, environment variables alone are enough.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			LocalityCacheTTL: time.Duration(v.GetInt("LOCALITY_CACHE_TTL")) * time.Second,
			LRUSize:          v.GetInt("LRU_SIZE"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       v.GetBool("WORKER_ENABLED"),
			ConsumerGroup: v.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:     v.GetInt("WORKER_BATCH_SIZE"),
			MaxRetries:    v.GetInt("WORKER_MAX_RETRIES"),
			ClaimMinIdle:  time.Duration(v.GetInt("WORKER_CLAIM_MIN_IDLE")) * time.Second,
		},
		Search: SearchConfig{
			NearbyRadiusKm: v.GetFloat64("NEARBY_RADIUS_KM"),
		},
		Loyalty: LoyaltyConfig{
			PointsPerReceipt: v.GetInt("LOYALTY_POINTS_PER_RECEIPT"),
			WelcomePoints:    v.GetInt("LOYALTY_WELCOME_POINTS"),
			RewardPoints:     v.GetInt("LOYALTY_REWARD_POINTS"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "fuelpark")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("LOCALITY_CACHE_TTL", 86400)
	v.SetDefault("LRU_SIZE", 256)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("WORKER_CONSUMER_GROUP", "loyalty-workers")
	v.SetDefault("WORKER_BATCH_SIZE", 20)
	v.SetDefault("WORKER_MAX_RETRIES", 3)
	v.SetDefault("WORKER_CLAIM_MIN_IDLE", 30)

	v.SetDefault("NEARBY_RADIUS_KM", 15)

	v.SetDefault("LOYALTY_POINTS_PER_RECEIPT", 20)
	v.SetDefault("LOYALTY_WELCOME_POINTS", 120)
	v.SetDefault("LOYALTY_REWARD_POINTS", 200)
}

// AllowedOrigins splits CORS_ALLOW_ORIGINS into a clean list
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.Server.AllowOrigins, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
