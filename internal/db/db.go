package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/siavashv/brokerage_intake_bot/internal/config"
)

type DB struct {
	Conn *sqlx.DB
}

func New(cfg *config.Config) (*DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	dbConn, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("db.New: cannot connect to database: %w", err)
	}

	dbConn.SetMaxOpenConns(20)
	dbConn.SetMaxIdleConns(5)
	dbConn.SetConnMaxLifetime(60 * time.Minute)

	return &DB{Conn: dbConn}, nil
}

func (db *DB) Close() error {
	return db.Conn.Close()
}

// RunMigrations executes the given SQL scripts statement by statement.
func RunMigrations(conn *sqlx.DB, scriptPaths ...string) error {
	for _, scriptPath := range scriptPaths {
		log.Printf("Executing SQL script: %s", scriptPath)

		content, err := os.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("db.RunMigrations: cannot read %s: %w", scriptPath, err)
		}

		statements := strings.Split(string(content), ";")
		for _, stmt := range statements {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}

			if _, err := conn.Exec(stmt); err != nil {
				return fmt.Errorf("db.RunMigrations: %s: %w", scriptPath, err)
			}
		}
	}

	return nil
}
