package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	BackendSheet    = "sheet"
	BackendPostgres = "postgres"
)

type Config struct {
	BotToken     string
	StoreBackend string
	AdminChatID  int64

	CredentialsFile string
	SpreadsheetID   string
	SheetName       string

	DBUser     string
	DBPassword string
	DBName     string
	DBHost     string
	DBPort     string
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Printf("config.Load: no .env file found - using env variables")
	}

	cfg := &Config{
		BotToken:        os.Getenv("BOT_TOKEN"),
		StoreBackend:    os.Getenv("STORE_BACKEND"),
		CredentialsFile: os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		SheetName:       os.Getenv("SHEET_NAME"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          os.Getenv("DB_PORT"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("config.Load: BOT_TOKEN is required")
	}

	if cfg.StoreBackend == "" {
		cfg.StoreBackend = BackendSheet
	}

	switch cfg.StoreBackend {
	case BackendSheet:
		if cfg.CredentialsFile == "" || cfg.SpreadsheetID == "" {
			return nil, fmt.Errorf("config.Load: GOOGLE_CREDENTIALS_FILE, SPREADSHEET_ID are required for the sheet backend")
		}

		if cfg.SheetName == "" {
			cfg.SheetName = "Sheet1"
		}
	case BackendPostgres:
		if cfg.DBUser == "" || cfg.DBPassword == "" || cfg.DBName == "" {
			return nil, fmt.Errorf("config.Load: DB_USER, DB_PASSWORD, DB_NAME are required for the postgres backend")
		}

		if cfg.DBHost == "" {
			cfg.DBHost = "localhost"
		}

		if cfg.DBPort == "" {
			cfg.DBPort = "5432"
		}
	default:
		return nil, fmt.Errorf("config.Load: unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	if raw := os.Getenv("ADMIN_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config.Load: invalid ADMIN_CHAT_ID: %w", err)
		}

		cfg.AdminChatID = id
	}

	return cfg, nil
}
