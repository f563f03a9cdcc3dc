package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret    string
	Issuer       string
	DbHost       string
	DbPort       string
	DbUser       string
	DbPassword   string
	DbName       string
	ServerPort   string
	IsProduction bool
	LogLevel     string

	AllowedOrigins []string

	MinioEnabled   bool
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	AuditRetentionDays int
	ReconcileInterval  time.Duration
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "staffing")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "staffing")
	ServerPort = getEnv("SERVER_PORT", "8080")
	IsProduction, _ = strconv.ParseBool(getEnv("IS_PRODUCTION", "false"))
	LogLevel = getEnv("LOG_LEVEL", "info")

	AllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:,http://127.0.0.1:"))

	MinioEnabled, _ = strconv.ParseBool(getEnv("MINIO_ENABLED", "false"))
	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "form-archive")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	AuditRetentionDays, err = strconv.Atoi(getEnv("AUDIT_RETENTION_DAYS", "30"))
	if err != nil || AuditRetentionDays <= 0 {
		AuditRetentionDays = 30
	}
	ReconcileInterval, err = time.ParseDuration(getEnv("RECONCILE_INTERVAL", "1h"))
	if err != nil || ReconcileInterval <= 0 {
		ReconcileInterval = time.Hour
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
