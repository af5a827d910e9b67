package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string `toml:"host"`
	Port               string `toml:"port"`
	User               string `toml:"user"`
	Password           string `toml:"password"`
	Name               string `toml:"name"`
	SSLMode            string `toml:"sslmode"`
	MaxOpenConns       int    `toml:"max_open_conns"`
	MaxIdleConns       int    `toml:"max_idle_conns"`
	ConnMaxLifetimeSec int    `toml:"conn_max_lifetime_sec"`
}

// SQLiteConfig holds the embedded store location.
type SQLiteConfig struct {
	Path string `toml:"path"`
}

// RedisConfig holds the Redis page store settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TLS      bool   `toml:"tls"`
	Prefix   string `toml:"prefix"`
}

// MinIOConfig holds object storage settings for export archives.
// Archiving is disabled when Endpoint is empty.
type MinIOConfig struct {
	Endpoint      string `toml:"endpoint"`
	AccessKey     string `toml:"access_key"`
	SecretKey     string `toml:"secret_key"`
	Bucket        string `toml:"bucket"`
	UseSSL        bool   `toml:"use_ssl"`
	PresignTTLSec int    `toml:"presign_ttl_sec"`
}

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// StoreConfig selects the page store backend.
type StoreConfig struct {
	Driver string `toml:"driver"`
}

// AppConfig is the centralized configuration struct for the application.
type AppConfig struct {
	AppHost  string         `toml:"app_host"`
	Port     string         `toml:"port"`
	LogLevel string         `toml:"log_level"`
	Store    StoreConfig    `toml:"store"`
	Database DatabaseConfig `toml:"database"`
	SQLite   SQLiteConfig   `toml:"sqlite"`
	Redis    RedisConfig    `toml:"redis"`
	MinIO    MinIOConfig    `toml:"minio"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() AppConfig {
	return AppConfig{
		AppHost:  "localhost:8080",
		Port:     "8080",
		LogLevel: "info",
		Store:    StoreConfig{Driver: DriverSQLite},
		Database: DatabaseConfig{
			Port:               "5432",
			SSLMode:            "disable",
			MaxOpenConns:       10,
			MaxIdleConns:       5,
			ConnMaxLifetimeSec: 300,
		},
		SQLite: SQLiteConfig{Path: "pagebuilder.db"},
		Redis:  RedisConfig{Addr: "localhost:6379", Prefix: "pagebuilder"},
		MinIO:  MinIOConfig{Bucket: "page-exports", PresignTTLSec: 900},
	}
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// When CONFIG_FILE names a TOML file its values replace the defaults; real
// environment variables take precedence over both.
func Load() (*AppConfig, error) {
	base := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, &base); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}
	return fromEnv(base), nil
}

func fromEnv(b AppConfig) *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", b.AppHost),
		Port:     getEnv("PORT", b.Port),
		LogLevel: getEnv("LOG_LEVEL", b.LogLevel),
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", b.Store.Driver),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", b.Database.Host),
			Port:               getEnv("DB_PORT", b.Database.Port),
			User:               getEnv("DB_USER", b.Database.User),
			Password:           getEnv("DB_PASSWORD", b.Database.Password),
			Name:               getEnv("DB_NAME", b.Database.Name),
			SSLMode:            getEnv("DB_SSLMODE", b.Database.SSLMode),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", b.Database.MaxOpenConns),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", b.Database.MaxIdleConns),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", b.Database.ConnMaxLifetimeSec),
		},
		SQLite: SQLiteConfig{
			Path: getEnv("SQLITE_PATH", b.SQLite.Path),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", b.Redis.Addr),
			Password: getEnv("REDIS_PASSWORD", b.Redis.Password),
			DB:       getEnvInt("REDIS_DB", b.Redis.DB),
			TLS:      getEnvBool("REDIS_TLS", b.Redis.TLS),
			Prefix:   getEnv("REDIS_PREFIX", b.Redis.Prefix),
		},
		MinIO: MinIOConfig{
			Endpoint:      getEnv("MINIO_ENDPOINT", b.MinIO.Endpoint),
			AccessKey:     getEnv("MINIO_ACCESS_KEY", b.MinIO.AccessKey),
			SecretKey:     getEnv("MINIO_SECRET_KEY", b.MinIO.SecretKey),
			Bucket:        getEnv("MINIO_BUCKET", b.MinIO.Bucket),
			UseSSL:        getEnvBool("MINIO_USE_SSL", b.MinIO.UseSSL),
			PresignTTLSec: getEnvInt("MINIO_PRESIGN_TTL_SEC", b.MinIO.PresignTTLSec),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
