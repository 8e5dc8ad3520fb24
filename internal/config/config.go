package config

import (
	"os"
	"strconv"
	"time"
	_ "time/tzdata"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ExamConfig holds document generation settings.
type ExamConfig struct {
	MaxRoomCapacity int
	PageSize        int
	FontFamily      string
	FontPath        string
	FontBoldPath    string
}

// SessionConfig controls the in-memory session store.
type SessionConfig struct {
	TTLSec           int
	SweepIntervalSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Timezone string
	LogLevel string
	// ArchiveEnabled stores every generated bundle in object storage and records it in the database.
	ArchiveEnabled bool
	Database       DatabaseConfig
	MinIO          MinIOConfig
	Exam           ExamConfig
	Session        SessionConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:        getEnv("APP_HOST", "localhost:8080"),
		Port:           getEnv("PORT", "8080"),
		Timezone:       getEnv("APP_TZ", "UTC"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ArchiveEnabled: getEnvBool("ARCHIVE_ENABLED", true),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Exam: ExamConfig{
			MaxRoomCapacity: getEnvInt("MAX_ROOM_CAPACITY", 300),
			PageSize:        getEnvInt("PAGE_SIZE", 50),
			FontFamily:      getEnv("FONT_FAMILY", "DejaVu"),
			FontPath:        getEnv("FONT_PATH", ""),
			FontBoldPath:    getEnv("FONT_BOLD_PATH", ""),
		},
		Session: SessionConfig{
			TTLSec:           getEnvInt("SESSION_TTL_SEC", 4*60*60),
			SweepIntervalSec: getEnvInt("SESSION_SWEEP_INTERVAL_SEC", 60),
		},
	}
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
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
