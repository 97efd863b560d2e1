package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings for establishing a Postgres connection.
type Config struct {
	DSN     string
	Timeout time.Duration
}

// Connect opens a gorm Postgres handle and verifies connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*gorm.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres handle: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// AutoMigrate keeps the schema in sync with the models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&categoryModel{},
		&productModel{},
		&cartModel{},
		&cartItemModel{},
		&orderModel{},
		&orderItemModel{},
	)
}
