package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_PATH    string
	APP_SECRET string
	BASE_URL   string
	UPLOAD_DIR string

	CORS_ORIGIN string

	SMTP_FROM     string
	SMTP_PASSWORD string
	SMTP_HOST     string
	SMTP_PORT     string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_PATH = getEnv("DB_PATH", "findmybud.db")
	APP_SECRET = mustEnv("APP_SECRET")
	BASE_URL = getEnv("BASE_URL", "http://localhost:"+PORT)
	UPLOAD_DIR = getEnv("UPLOAD_DIR", "static/uploads")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")

	// Mail is optional: when credentials are missing the notification
	// gateway logs verification links instead of sending them.
	SMTP_FROM = getEnv("SMTP_FROM", "")
	SMTP_PASSWORD = getEnv("SMTP_PASSWORD", "")
	SMTP_HOST = getEnv("SMTP_HOST", "")
	SMTP_PORT = getEnv("SMTP_PORT", "587")
}

// MailConfigured reports whether the SMTP transport has enough credentials
// to actually send.
func MailConfigured() bool {
	return SMTP_FROM != "" && SMTP_PASSWORD != "" && SMTP_HOST != ""
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
