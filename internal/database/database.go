package database

import (
	"fmt"
	"time"

	"ledgerflow/internal/config"
	"ledgerflow/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Owner{},
		&models.Category{},
		&models.Transaction{},
		&models.Installment{},
		&models.AutomationRule{},
		&models.InboundEvent{},
		&models.ConsumerOffset{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		// Transaction indexes
		"CREATE INDEX IF NOT EXISTS idx_transactions_owner_id ON transactions(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_category_id ON transactions(category_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_parent ON transactions(parent_transaction_id) WHERE parent_transaction_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_transactions_due_date ON transactions(due_date)",
		// Category indexes
		"CREATE INDEX IF NOT EXISTS idx_categories_owner_id ON categories(owner_id)",
		// Installment indexes
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_installments_transaction_id ON installments(transaction_id)",
		// Automation rule indexes
		"CREATE INDEX IF NOT EXISTS idx_automation_rules_owner_active ON automation_rules(owner_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_automation_rules_priority ON automation_rules(priority DESC, id ASC)",
		// Inbound log indexes
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_inbound_events_partition_offset ON inbound_events(partition, "offset")`,
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
