package database

import (
	"fmt"
	"strings"

	"github.com/h4ks-com/farmstand/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(databaseURL string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Products outlive the farm that listed them, so products.farm_id
		// must not carry a foreign key constraint.
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	switch {
	case databaseURL == "" || databaseURL == ":memory:":
		// A single connection keeps every query on the same in-memory database.
		db, err = gorm.Open(sqlite.Open(":memory:"), config)
		if err == nil {
			err = limitToSingleConn(db)
		}
	case strings.HasPrefix(databaseURL, "sqlite:"):
		dbPath := strings.TrimPrefix(databaseURL, "sqlite:")
		if dbPath == ":memory:" {
			db, err = gorm.Open(sqlite.Open(":memory:"), config)
			if err == nil {
				err = limitToSingleConn(db)
			}
			break
		}
		dbPath = dbPath + "?_journal_mode=WAL&_busy_timeout=5000"
		db, err = gorm.Open(sqlite.Open(dbPath), config)
	default:
		db, err = gorm.Open(postgres.Open(databaseURL), config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func limitToSingleConn(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	return nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Farm{},
		&models.Product{},
	)

	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Reset removes every product and farm. Used by the seed command.
func Reset(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Farm{}).Error
	})
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
