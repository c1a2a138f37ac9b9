package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// Remote platform backend.
	BackendBaseURL string
	BackendToken   string

	// Console session.
	JWTSecret         string
	AccessTokenMaxAge int
	AdminEmail        string
	AdminName         string
	AdminPasswordHash string

	// Audit trail database.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Redis (snapshot warm cache + admin event stream). Empty disables both.
	RedisURL string

	// Background refresh interval in seconds. 0 disables the refresher.
	RefreshInterval int

	// R2/S3 export storage.
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found or error loading it, relying on environment variables")
	}

	backendBaseURL := os.Getenv("BACKEND_BASE_URL")
	if backendBaseURL == "" {
		backendBaseURL = "http://localhost:4000"
	}

	backendToken := os.Getenv("BACKEND_TOKEN")
	if backendToken == "" {
		return nil, fmt.Errorf("BACKEND_TOKEN is required")
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	accessTokenMaxAge, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_MAX_AGE"))
	if err != nil || accessTokenMaxAge <= 0 {
		accessTokenMaxAge = 3600
	}

	refreshInterval, err := strconv.Atoi(os.Getenv("REFRESH_INTERVAL"))
	if err != nil || refreshInterval < 0 {
		refreshInterval = 0
	}

	return &Config{
		ServerPort: serverPort,

		BackendBaseURL: backendBaseURL,
		BackendToken:   backendToken,

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AccessTokenMaxAge: accessTokenMaxAge,
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminName:         os.Getenv("ADMIN_NAME"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		RedisURL: os.Getenv("REDIS_URL"),

		RefreshInterval: refreshInterval,

		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
		R2PublicURL:       os.Getenv("R2_PUBLIC_URL"),
	}, nil
}
