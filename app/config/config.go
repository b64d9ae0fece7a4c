package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB    *sql.DB
	Port  string
	Admin AdminConfig
}

// AdminConfig holds the credentials for the single operator account.
// If PasswordHash is set it takes precedence over the plain Password.
type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
}

var AppConfig *Config

// Load reads .env (if present) and environment variables, opens the
// database connection and populates AppConfig.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded, using environment variables: %v", err)
	}

	db, err := openDB()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	AppConfig = &Config{
		DB:   db,
		Port: getEnv("PORT", "8080"),
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			Password:     getEnv("ADMIN_PASSWORD", "admin"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
	}
	log.Println("Database connected successfully")
}

func openDB() (*sql.DB, error) {
	psqlInfo := os.Getenv("DATABASE_URL")
	if psqlInfo == "" {
		port, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
		if err != nil {
			return nil, fmt.Errorf("invalid DB_PORT: %w", err)
		}
		psqlInfo = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			getEnv("DB_HOST", "localhost"), port,
			getEnv("DB_USER", "postgres"), getEnv("DB_PASSWORD", ""),
			getEnv("DB_NAME", "projecttracker"), getEnv("DB_SSLMODE", "disable"))
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	return db, nil
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
