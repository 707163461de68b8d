package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration
type Config struct {
	// Database
	DatabaseHost     string
	DatabasePort     string
	PostgresUser     string
	PostgresPassword string
	DatabaseName     string

	// Authentication
	JWTSecret    string
	PublicDomain string

	// Discord
	DiscordClientID        string
	DiscordClientSecret    string
	DiscordBotToken        string
	DiscordAnnounceChannel string

	// Caching
	RedisHost     string
	RedisPassword string

	// Other
	KafkaBroker string
	FrontendURL string
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

// LoadConfig loads and validates all environment variables
func loadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		// Database - required
		DatabaseHost:     getEnvWithDefault("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnvWithDefault("DATABASE_PORT", "5432"),
		PostgresUser:     getEnvWithDefault("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnvWithDefault("POSTGRES_PASSWORD", "postgres"),
		DatabaseName:     getEnvWithDefault("DATABASE_NAME", "postgres"),

		// JWT - required
		JWTSecret:    getEnvWithDefault("JWT_SECRET", "dummyjwt"),
		PublicDomain: getEnvWithDefault("PUBLIC_DOMAIN", "localhost"),

		// Discord - optional, needed for oauth login and announcements
		DiscordClientID:        getEnv("DISCORD_CLIENT_ID"),
		DiscordClientSecret:    getEnv("DISCORD_CLIENT_SECRET"),
		DiscordBotToken:        getEnv("DISCORD_BOT_TOKEN"),
		DiscordAnnounceChannel: getEnv("DISCORD_ANNOUNCE_CHANNEL"),

		// Caching - optional, falls back to the in-memory store
		RedisHost:     getEnv("REDIS_HOST"),
		RedisPassword: getEnv("REDIS_PASSWORD"),

		// Other
		KafkaBroker: getEnvWithDefault("KAFKA_BROKER", "localhost:9092"),
		FrontendURL: getEnvWithDefault("FRONTEND_URL", "http://localhost:3000"),
	}

	appConfig = config
	return config
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

// Helper functions
func getEnv(key string) string {
	value := os.Getenv(key)
	if value == "" && IsProduction() {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsProduction returns true if running in production
func IsProduction() bool {
	return getEnvWithDefault("ENVIRONMENT", "development") == "production"
}

// IsDevelopment returns true if running in development
func IsDevelopment() bool {
	return !IsProduction()
}
