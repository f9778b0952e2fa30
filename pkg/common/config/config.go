package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	ServerPort     string
	ServerHost     string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestBody int64

	// Database
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Kafka
	KafkaBrokers []string
	KafkaGroupID string

	// LLM
	LLMAPIKey    string
	LLMModelName string

	// Chat
	ChatHistoryLimit int
	ChatMaxTokens    int

	// Patient cache
	PatientCacheTTL time.Duration

	// Catalog overrides (YAML); empty means built-in defaults
	RedFlagRulesPath string
	FaqCatalogPath   string

	// Hospital
	HospitalName  string
	HospitalPhone string
}

func Load() *Config {
	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		ServerHost:     getEnv("SERVER_HOST", "0.0.0.0"),
		ReadTimeout:    getDuration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout:   getDuration("WRITE_TIMEOUT", 30*time.Second),
		MaxRequestBody: int64(getIntEnv("MAX_REQUEST_BODY_BYTES", 1*1024*1024)),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "spinetrack"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "spinetrack123"),
		PostgresDB:       getEnv("POSTGRES_DB", "spinetrack"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getIntEnv("REDIS_DB", 0),

		KafkaBrokers: getStringSliceEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
		KafkaGroupID: getEnv("KAFKA_GROUP_ID", "spinetrack-platform"),

		LLMAPIKey:    getEnv("LLM_API_KEY", ""),
		LLMModelName: getEnv("LLM_MODEL_NAME", "gpt-4o-mini"),

		ChatHistoryLimit: getIntEnv("CHAT_HISTORY_LIMIT", 10),
		ChatMaxTokens:    getIntEnv("CHAT_MAX_TOKENS", 1024),

		PatientCacheTTL: getDuration("PATIENT_CACHE_TTL", 5*time.Minute),

		RedFlagRulesPath: getEnv("RED_FLAG_RULES_PATH", ""),
		FaqCatalogPath:   getEnv("FAQ_CATALOG_PATH", ""),

		HospitalName:  getEnv("HOSPITAL_NAME", "다보스 병원"),
		HospitalPhone: getEnv("HOSPITAL_PHONE", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return []string{value}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
