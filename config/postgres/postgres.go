package postgres

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"Santa/config"
	"Santa/models/postgres"

	glog "github.com/google/logger"
	_ "github.com/lib/pq"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds the lib/pq connection string
func DSN(cfg config.PostgresConfig) string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)
}

// ConnectGORM returns a GORM DB instance connected to PostgreSQL
func ConnectGORM(cfg config.PostgresConfig) (*gorm.DB, error) {
	// NOTE: GORM runs on top of a lib/pq connection, see https://github.com/go-gorm/gorm/issues/5409
	sqlDB, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening PostgreSQL: %w", err)
	}

	gormConfig := &gorm.Config{}
	if cfg.Verbose {
		gormConfig.Logger = logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Info,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		)
	}

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("opening GORM: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("pinging PostgreSQL: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	glog.Info("Successfully connected to PostgreSQL with GORM")
	return db, nil
}

// MigrateDatabase migrates the GORM models to the PostgreSQL database
func MigrateDatabase(db *gorm.DB) error {
	// NOTE: postgres driver v1.4.0 is required for AutoMigrate, see https://github.com/pilinux/gorest/issues/167
	err := db.AutoMigrate(
		&postgres.User{},
		&postgres.Event{},
		&postgres.Draw{},
		&postgres.WishlistItem{},
		&postgres.PhoneNotification{})
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	glog.Info("PostgreSQL database migrated successfully")
	return nil
}
