package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Scoring  ScoringConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	Enabled       bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	ProfileTTL    time.Duration
}

// ScoringConfig holds the price-tolerance bounds and message randomness.
type ScoringConfig struct {
	MinTolerance float64
	MaxTolerance float64
	MessageSeed  int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	redisEnabled, err := strconv.ParseBool(getEnv("REDIS_ENABLED", "false"))
	if err != nil {
		return nil, errors.New("invalid REDIS_ENABLED value")
	}

	profileTTL, err := time.ParseDuration(getEnv("REDIS_PROFILE_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_PROFILE_TTL: %w", err)
	}

	minTol, err := getEnvFloat("SCORING_MIN_TOLERANCE", 0.03)
	if err != nil {
		return nil, err
	}
	maxTol, err := getEnvFloat("SCORING_MAX_TOLERANCE", 0.75)
	if err != nil {
		return nil, err
	}

	seed, err := strconv.ParseInt(getEnv("SCORING_MESSAGE_SEED", "0"), 10, 64)
	if err != nil {
		return nil, errors.New("invalid SCORING_MESSAGE_SEED value")
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "ECO-MART Sustainability API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "eco_mart"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			Enabled:       redisEnabled,
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			ProfileTTL:    profileTTL,
		},
		Scoring: ScoringConfig{
			MinTolerance: minTol,
			MaxTolerance: maxTol,
			MessageSeed:  seed,
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.Scoring.MinTolerance < 0 || cfg.Scoring.MinTolerance > cfg.Scoring.MaxTolerance {
		return nil, errors.New("scoring tolerance bounds must satisfy 0 <= min <= max")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return f, nil
}
