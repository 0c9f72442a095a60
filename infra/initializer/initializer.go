// Package initializer wires infrastructure dependencies from configuration.
package initializer

import (
	"fmt"

	"github.com/minibank/ledger/config"
	"github.com/minibank/ledger/infra"
	"github.com/minibank/ledger/infra/repository"
)

// InitializeDependencies builds the logger, the database connection and the
// UnitOfWork from the loaded configuration.
func InitializeDependencies(cfg *config.App) (config.Deps, error) {
	logger := SetupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB)
	if err != nil {
		return config.Deps{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return config.Deps{
		Uow:    repository.NewUoW(db),
		Logger: logger,
		Config: cfg,
	}, nil
}
