package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	AppPort string
	AppEnv  string

	TossSecretKey string
	TossBaseURL   string

	JWTSecret string
}

const defaultTossBaseURL = "https://api.tosspayments.com"

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        os.Getenv("DB_PORT"),
		AppPort:       os.Getenv("APP_PORT"),
		AppEnv:        os.Getenv("APP_ENV"),
		TossSecretKey: os.Getenv("TOSS_SECRET_KEY"),
		TossBaseURL:   os.Getenv("TOSS_BASE_URL"),
		JWTSecret:     os.Getenv("SECRET_KEY"),
	}

	if cfg.TossBaseURL == "" {
		cfg.TossBaseURL = defaultTossBaseURL
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
