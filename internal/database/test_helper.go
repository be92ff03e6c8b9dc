package database

import (
	"testing"

	"ledgerflow/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database with the full schema
// migrated, for use in repository and service tests.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Owner{},
		&models.Category{},
		&models.Transaction{},
		&models.Installment{},
		&models.AutomationRule{},
		&models.InboundEvent{},
		&models.ConsumerOffset{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// CleanupTestDB closes the underlying connection of a test database
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("failed to close test database: %v", err)
	}
}

// CreateTestOwner inserts an owner with randomized identity fields
func CreateTestOwner(t *testing.T, db *gorm.DB) *models.Owner {
	t.Helper()

	owner := &models.Owner{
		Name:  gofakeit.Name(),
		Email: gofakeit.Email(),
	}
	if err := db.Create(owner).Error; err != nil {
		t.Fatalf("failed to create test owner: %v", err)
	}
	return owner
}

// CreateTestCategory inserts a category belonging to the given owner
func CreateTestCategory(t *testing.T, db *gorm.DB, ownerID uint, categoryType string) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:    gofakeit.NounAbstract(),
		Icon:    "tag",
		Color:   gofakeit.HexColor(),
		Type:    categoryType,
		OwnerID: ownerID,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}
