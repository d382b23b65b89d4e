package db

import (
	"errors"
	"fmt"
	"log"
	"os"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the migrate drivers and the file source.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"autoservice/internal/models"
)

// Connect opens the database, ensures the schema exists and optionally
// seeds the singleton company row.
func Connect(dsn string, runMigrations, runSeed bool) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_DSN is empty, check the environment configuration")
	}

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	conn, err := gorm.Open(Dialector(dsn), &gorm.Config{Logger: logger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if !IsPostgres(dsn) {
		if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	if runMigrations {
		if err := runSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		if err := AutoMigrate(conn); err != nil {
			return nil, err
		}
	}

	if runSeed {
		if err := Seed(conn); err != nil {
			return nil, fmt.Errorf("seed failed: %w", err)
		}
	}
	return conn, nil
}

// AutoMigrate creates or updates the schema from the models (dev convenience;
// production uses the SQL migrations in ./migrations).
func AutoMigrate(conn *gorm.DB) error {
	modelsToMigrate := []interface{}{
		&models.Client{}, &models.Auto{}, &models.Account{},
		&models.Master{}, &models.Work{}, &models.Part{}, &models.Company{},
	}
	for _, m := range modelsToMigrate {
		if err := conn.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}

// Seed inserts the singleton company row when it does not exist yet, so the
// settings screen always has a record to edit.
func Seed(conn *gorm.DB) error {
	var existing models.Company
	err := conn.First(&existing, models.CompanyID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	company := models.Company{ID: models.CompanyID}
	if err := conn.Create(&company).Error; err != nil {
		return err
	}
	log.Println("[DB] seeded empty company record")
	return nil
}

// runSQLMigrations executes migrations in ./migrations using golang-migrate.
func runSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", MigrateURL(dsn))
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
