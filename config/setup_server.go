package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	ServerAddr     string         `yaml:"serverAddr"`
	S3Config       S3Config       `yaml:"s3Config"`
	JWT            JWTConfig      `yaml:"jwt"`
	TTL            TTL            `yaml:"TTL"`
}

// LoadConfig : читает yaml конфигурацию, подставляя ${VAR} из окружения
func LoadConfig(path string) (*AppConfig, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseConfig(file)
}

func ParseConfig(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *AppConfig) applyDefaults() {
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = ":8080"
	}
	if cfg.JWT.AccessTokenTTL == "" {
		cfg.JWT.AccessTokenTTL = "15m"
	}
	if cfg.JWT.RefreshTokenTTL == "" {
		cfg.JWT.RefreshTokenTTL = "240h"
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "content-hub-api"
	}
	if cfg.TTL.VideoCache <= 0 {
		cfg.TTL.VideoCache = 300
	}
	if cfg.TTL.Presign <= 0 {
		cfg.TTL.Presign = 900
	}
}

// Validate : проверяет, что секреты заданы и различны, а TTL парсятся
func (cfg *AppConfig) Validate() error {
	if cfg.JWT.AccessTokenSecret == "" || cfg.JWT.RefreshTokenSecret == "" {
		return errors.New("jwt: access_token_secret и refresh_token_secret обязательны")
	}
	if cfg.JWT.AccessTokenSecret == cfg.JWT.RefreshTokenSecret {
		return errors.New("jwt: access и refresh секреты должны различаться")
	}

	for name, value := range map[string]string{
		"access_token_ttl":  cfg.JWT.AccessTokenTTL,
		"refresh_token_ttl": cfg.JWT.RefreshTokenTTL,
	} {
		ttl, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("jwt: неверный %s: %w", name, err)
		}
		if ttl <= 0 {
			return fmt.Errorf("jwt: %s должен быть положительным", name)
		}
	}

	return nil
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
