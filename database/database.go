package database

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/avaldez/restogest/models"
)

const defaultDSN = "host=localhost user=postgres password=postgres dbname=restogest port=5432 sslmode=disable"

// Connect opens the postgres connection described by DB_DSN.
func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = defaultDSN
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate creates or updates the table for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Product{},
		&models.Recipe{},
		&models.Table{},
		&models.Order{},
		&models.InventoryMovement{},
	)
}
