package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Print    PrintConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	PrintLogFilePath   string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret       string
	OperatorPinHash string
	TokenTTLMinutes int
}

type PrintConfig struct {
	Topic       string
	RendererURL string
	PrinterURL  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			PrintLogFilePath:   getEnv("PRINT_LOG_FILE_PATH", "logs/print.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret:       getEnv("JWT_SECRET", ""),
			OperatorPinHash: getEnv("OPERATOR_PIN_HASH", ""),
			TokenTTLMinutes: getEnvAsInt("TOKEN_TTL_MINUTES", 12*60),
		},
		Print: PrintConfig{
			Topic:       getEnv("PRINT_RECEIPT_TOPIC_NAME", "PRINT_RECEIPT"),
			RendererURL: getEnv("RECEIPT_RENDERER_URL", "http://localhost:7070"),
			PrinterURL:  getEnv("PRINTER_AGENT_URL", "http://localhost:7071"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
