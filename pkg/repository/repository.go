// Package repository defines the persistence contracts consumed by the
// services. Implementations live under infra/repository.
package repository

import (
	"context"

	"github.com/minibank/ledger/pkg/domain/account"
	"github.com/minibank/ledger/pkg/domain/client"
)

// ClientRepository persists Client records.
type ClientRepository interface {
	Create(ctx context.Context, c *client.Client) error
	Get(ctx context.Context, id uint) (*client.Client, error)
	GetByUsername(ctx context.Context, username string) (*client.Client, error)
	Update(ctx context.Context, c *client.Client) error
}

// AccountRepository persists Account records and exposes the balance
// primitives used by the transfer engine and the accrual pass. The ForUpdate
// variants take row locks and are only meaningful inside a UnitOfWork
// transaction; balance writes must never happen outside one.
type AccountRepository interface {
	Create(ctx context.Context, a *account.Account) error
	GetByClientID(ctx context.Context, clientID uint) (*account.Account, error)
	GetByClientIDForUpdate(ctx context.Context, clientID uint) (*account.Account, error)
	ListForUpdate(ctx context.Context) ([]*account.Account, error)
	UpdateBalance(ctx context.Context, accountID uint, balance float64) error
}
