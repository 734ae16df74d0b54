package config

import (
	"os"
	"strconv"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Token signing configuration
type AuthConfig struct {
	Secret          string
	TokenTTLSeconds int
}

// Bootstrap administrator configuration. When both fields are set and no
// user with that email exists, one admin account is seeded at startup.
type AdminConfig struct {
	Email    string
	Password string
}

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Auth   AuthConfig
	Admin  AdminConfig
}

// Default configuration values
const (
	DefaultServerPort      = "8080"
	DefaultServerHost      = ""
	DefaultMongoURI        = "mongodb://localhost:27017/comanda"
	DefaultMongoDB         = "comanda"
	DefaultJWTSecret       = "esta-no-es-una-api-secreta"
	DefaultTokenTTLSeconds = 3600 // 1 hour
	// Pagination defaults
	DefaultPageSize = 20
	MaxPageSize     = 100
	// Validation limits
	MinPasswordLength = 6
)

// New returns a new Config populated from the environment with defaults.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", DefaultMongoURI),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		Auth: AuthConfig{
			Secret:          getEnv("JWT_SECRET", DefaultJWTSecret),
			TokenTTLSeconds: getEnvInt("TOKEN_TTL_SECONDS", DefaultTokenTTLSeconds),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
