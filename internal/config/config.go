package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type Session struct {
	SecretKey  string
	CookieName string
	MaxAge     time.Duration
	Secure     bool
}

type Config struct {
	ServerPort          int
	DB                  DB
	Session             Session
	JWTSecretKey        string
	AccessTokenDuration time.Duration
	MigrationsPath      string
	LogLevel            string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "hackernews"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadSession() Session {
	return Session{
		SecretKey:  getEnv("SESSION_SECRET_KEY", ""),
		CookieName: getEnv("SESSION_COOKIE_NAME", "sessionid"),
		MaxAge:     parseDuration(getEnv("SESSION_MAX_AGE", "16h"), 16*time.Hour),
		Secure:     getEnvBool("SESSION_SECURE", false),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Warn("файл .env не найден, используются переменные окружения")
	}

	return &Config{
		ServerPort:          getEnvAsInt("SERVER_PORT", 8080),
		DB:                  LoadDB(),
		Session:             LoadSession(),
		JWTSecretKey:        getEnv("JWT_SECRET_KEY", ""),
		AccessTokenDuration: parseDuration(getEnv("ACCESS_TOKEN_DURATION", "2h"), 2*time.Hour),
		MigrationsPath:      getEnv("MIGRATIONS_PATH", "migrations/001_create_tables.sql"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}
}
