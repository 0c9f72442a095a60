// Package infra owns the database connection and schema migration.
package infra

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/minibank/ledger/config"
	"github.com/minibank/ledger/infra/repository"
)

// NewDBConnection opens the Postgres connection and migrates the schema.
// TranslateError is required so unique-index violations surface as
// gorm.ErrDuplicatedKey and can be mapped to domain errors.
func NewDBConnection(cfg *config.DB) (*gorm.DB, error) {
	if cfg == nil || cfg.Url == "" {
		return nil, errors.New("database url is not set")
	}
	db, err := gorm.Open(postgres.Open(cfg.Url), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&repository.Client{}, &repository.Account{}); err != nil {
		return nil, err
	}
	return db, nil
}
