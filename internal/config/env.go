package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	CORSOrigins string

	HotelName  string
	HotelGSTIN string
}

// LoadEnv reads configuration from the environment, loading .env first when
// present. Every value has a development default so the binary runs bare.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getenv("DB_USER", "root"),
		DBPass: strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost: getenv("DB_HOST", "127.0.0.1:3306"),
		DBName: getenv("DB_NAME", "hotel_desk"),

		JWTSecret: getenv("JWT_SECRET", "super-secret-key-change-me"),

		CORSOrigins: strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")),

		HotelName:  getenv("HOTEL_NAME", "HOTEL MANAGEMENT SYSTEM"),
		HotelGSTIN: getenv("HOTEL_GSTIN", "36AAHFH7018Q3ZS"),
	}
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
