package database

import (
	"fmt"
	"os"
	"time"

	"github.com/fitcore/fitcore-api/internal/models"
	pkgLogger "github.com/fitcore/fitcore-api/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a connection to the PostgreSQL database.
// slowQuery is the threshold above which statements are logged as slow.
func Connect(databaseURL string, slowQuery time.Duration) (*gorm.DB, error) {
	// Configure GORM logger
	logLevel := logger.Silent
	if os.Getenv("ENVIRONMENT") != "production" {
		logLevel = logger.Info
	}

	gormLogger := pkgLogger.NewGormLogger(logLevel, slowQuery)

	// Open database connection. Default transactions stay disabled; the
	// receipt ledger opens its own transaction explicitly where atomicity
	// actually matters.
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate applies the model schema, creating missing tables, columns and
// constraints. The unique index on receipts.receipt_number is part of
// this schema and is what surfaces counter-reset collisions.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.ReceiptCounter{},
		&models.Receipt{},
		&models.Member{},
		&models.PTPackage{},
		&models.DayPass{},
		&models.Staff{},
		&models.Expense{},
		&models.Visitor{},
		&models.AuditLog{},
	)
}
