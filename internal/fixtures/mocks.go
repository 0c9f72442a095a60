// Package fixtures provides hand-written testify mocks for the persistence
// contracts, shared by service and webapi tests.
package fixtures

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/minibank/ledger/pkg/domain/account"
	"github.com/minibank/ledger/pkg/domain/client"
	"github.com/minibank/ledger/pkg/repository"
)

// MockClientRepository mocks repository.ClientRepository.
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, id uint) (*client.Client, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*client.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClientRepository) GetByUsername(ctx context.Context, username string) (*client.Client, error) {
	args := m.Called(ctx, username)
	if c, ok := args.Get(0).(*client.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClientRepository) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockAccountRepository mocks repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByClientID(ctx context.Context, clientID uint) (*account.Account, error) {
	args := m.Called(ctx, clientID)
	if a, ok := args.Get(0).(*account.Account); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountRepository) GetByClientIDForUpdate(ctx context.Context, clientID uint) (*account.Account, error) {
	args := m.Called(ctx, clientID)
	if a, ok := args.Get(0).(*account.Account); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountRepository) ListForUpdate(ctx context.Context) ([]*account.Account, error) {
	args := m.Called(ctx)
	if accounts, ok := args.Get(0).([]*account.Account); ok {
		return accounts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, accountID uint, balance float64) error {
	args := m.Called(ctx, accountID, balance)
	return args.Error(0)
}

// MockUoW implements repository.UnitOfWork without a database. Do runs the
// callback against the mock itself; CommitErr simulates a commit-time failure
// after a callback that succeeded.
type MockUoW struct {
	ClientRepo  *MockClientRepository
	AccountRepo *MockAccountRepository
	CommitErr   error
}

// NewMockUoW builds a MockUoW with fresh repository mocks.
func NewMockUoW() *MockUoW {
	return &MockUoW{
		ClientRepo:  &MockClientRepository{},
		AccountRepo: &MockAccountRepository{},
	}
}

func (m *MockUoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if err := fn(m); err != nil {
		return err
	}
	return m.CommitErr
}

func (m *MockUoW) ClientRepository() (repository.ClientRepository, error) {
	return m.ClientRepo, nil
}

func (m *MockUoW) AccountRepository() (repository.AccountRepository, error) {
	return m.AccountRepo, nil
}
