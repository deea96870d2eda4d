package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	// RedisAddr kosong berarti cache playground dimatikan.
	RedisAddr string
	RedisPass string

	// StrictBooking mengaktifkan guard compare-and-set saat booking.
	// Default: false, mengikuti perilaku lama (double booking dibiarkan).
	StrictBooking bool

	CORSOrigins []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	dbUser := envOr("DB_USER", "root")
	dbPass := strings.TrimSpace(os.Getenv("DB_PASS"))
	dbHost := envOr("DB_HOST", "127.0.0.1:3306")
	dbName := envOr("DB_NAME", "playground_app")

	jwtSecret := envOr("JWT_SECRET", "super-secret-key-change-me")

	strict := false
	switch strings.ToLower(strings.TrimSpace(os.Getenv("STRICT_BOOKING"))) {
	case "1", "true", "yes", "on":
		strict = true
	}

	var corsOrigins []string
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				corsOrigins = append(corsOrigins, o)
			}
		}
	}

	return Env{
		AppAddr:       appAddr,
		GinMode:       ginMode,
		DBUser:        dbUser,
		DBPass:        dbPass,
		DBHost:        dbHost,
		DBName:        dbName,
		JWTSecret:     jwtSecret,
		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPass:     strings.TrimSpace(os.Getenv("REDIS_PASS")),
		StrictBooking: strict,
		CORSOrigins:   corsOrigins,
	}
}

func envOr(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
