package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	MongoURI string
	MongoDB  string

	RedisAddress string

	NATSURL string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool

	JWTSecret string

	MapsAPIKey string

	SMTPEmail    string
	SMTPPassword string
}

func Load() (*Config, error) {
	// Environment variables are the source of truth; .env is a convenience.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env, relying on environment variables")
	}

	minioUseSSLStr := getEnv("MINIO_USE_SSL", "false")
	minioUseSSL, err := strconv.ParseBool(minioUseSSLStr)
	if err != nil {
		log.Printf("Warning: invalid MINIO_USE_SSL value '%s', defaulting to false. Error: %v", minioUseSSLStr, err)
		minioUseSSL = false
	}

	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		MongoURI:       getEnv("MONGO_URI", ""),
		MongoDB:        getEnv("MONGO_DB", "landplatform"),
		RedisAddress:   getEnv("REDIS_ADDRESS", ""),
		NATSURL:        getEnv("NATS_URL", ""),
		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinIOBucket:    getEnv("MINIO_BUCKET", "plots-media"),
		MinIOUseSSL:    minioUseSSL,
		JWTSecret:      getEnv("JWT_SECRET", ""),
		MapsAPIKey:     getEnv("MAPS_API_KEY", ""),
		SMTPEmail:      getEnv("SMTP_EMAIL", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("FATAL: JWT_SECRET is not set. This is required for security.")
	}

	return cfg, nil
}

// DataGatewayConfigured reports whether the backing store was configured at
// all. An unconfigured gateway is a distinct, user-visible state, not an
// empty-result state.
func (c *Config) DataGatewayConfigured() bool { return c.MongoURI != "" }

// MediaStoreConfigured reports whether blob uploads can work.
func (c *Config) MediaStoreConfigured() bool { return c.MinIOEndpoint != "" }

// MapsConfigured reports whether distance queries can work.
func (c *Config) MapsConfigured() bool { return c.MapsAPIKey != "" }

// MailConfigured reports whether outbound mail can work.
func (c *Config) MailConfigured() bool { return c.SMTPEmail != "" && c.SMTPPassword != "" }

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
