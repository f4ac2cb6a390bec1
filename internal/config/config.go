package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr    string
	PostgresDSN string
	LogLevel    string

	JWTSecret        string
	JWTExpiryMinutes int

	CacheTTLSeconds int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AuthServiceURL     string
	AuthTimeoutSeconds int

	ExemptPaths   string
	RouteRoles    string
	RouteBackends string
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:           addr,
		PostgresDSN:        os.Getenv("POSTGRES_DSN"),
		LogLevel:           envDefault("LOG_LEVEL", "info"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTExpiryMinutes:   envIntDefault("JWT_EXPIRY_MINUTES", 60),
		CacheTTLSeconds:    envIntDefault("CACHE_TTL_SECONDS", 300),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:            envIntDefault("REDIS_DB", 0),
		AuthServiceURL:     os.Getenv("AUTH_SERVICE_URL"),
		AuthTimeoutSeconds: envIntDefault("AUTH_TIMEOUT_SECONDS", 5),
		ExemptPaths:        envDefault("EXEMPT_PATHS", "/auth/login,/auth/register"),
		RouteRoles:         os.Getenv("ROUTE_ROLES"),
		RouteBackends:      os.Getenv("ROUTE_BACKENDS"),
	}
}

func envDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func (c Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpiryMinutes) * time.Minute
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func (c Config) AuthTimeout() time.Duration {
	return time.Duration(c.AuthTimeoutSeconds) * time.Second
}
