package infra

import (
	"fmt"

	"github.com/robertsn808/alii/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate to create / update all tables. The unique indexes on
// staff.employee_id, transactions.transaction_id and
// transactions.receipt_number come from the model tags; they are the
// storage-level guard against duplicate ledger entries.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations applies the schema. Also used by integration tests
// against a throwaway database.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Staff{},
		&model.MenuItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Transaction{},
		&model.TransactionItem{},
	)
}
