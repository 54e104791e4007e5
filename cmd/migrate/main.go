// Command migrate creates or updates the PostgreSQL schema and exits.
package main

import (
	"io"

	"Santa/config"
	pgconfig "Santa/config/postgres"

	"github.com/google/logger"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()
	cfg := config.Load()
	defer logger.Init("santa-migrate", true, false, io.Discard).Close()

	db, err := pgconfig.ConnectGORM(cfg.Postgres)
	if err != nil {
		logger.Fatalf("Error connecting to PostgreSQL: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
	}
	defer sqlDB.Close()

	if err := pgconfig.MigrateDatabase(db); err != nil {
		logger.Fatalf("Migration failed: %v", err)
	}
}
