package config

import (
	"log/slog"

	"github.com/minibank/ledger/pkg/repository"
)

// Deps holds the infrastructure dependencies handed to services and to the
// app builder. The persistence handle is passed explicitly; nothing reads
// ambient global state.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
	Config *App
}
