// Package repository implements the persistence contracts from
// pkg/repository on top of GORM and Postgres.
package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/minibank/ledger/pkg/domain/account"
	"github.com/minibank/ledger/pkg/domain/client"
	"github.com/minibank/ledger/pkg/repository"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository returns a ClientRepository bound to the given session.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, c *client.Client) error {
	record := Client{
		Username:  c.Username,
		Password:  c.Password,
		Name:      c.Name,
		DOB:       c.DOB,
		Phones:    c.Phones,
		Emails:    c.Emails,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return mapClientError(err)
	}
	c.ID = record.ID
	return nil
}

func (r *clientRepository) Get(ctx context.Context, id uint) (*client.Client, error) {
	var record Client
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, mapClientError(err)
	}
	return toDomainClient(&record), nil
}

func (r *clientRepository) GetByUsername(ctx context.Context, username string) (*client.Client, error) {
	var record Client
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&record).Error; err != nil {
		return nil, mapClientError(err)
	}
	return toDomainClient(&record), nil
}

func (r *clientRepository) Update(ctx context.Context, c *client.Client) error {
	record := Client{
		ID:        c.ID,
		Username:  c.Username,
		Password:  c.Password,
		Name:      c.Name,
		DOB:       c.DOB,
		Phones:    c.Phones,
		Emails:    c.Emails,
		CreatedAt: c.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return mapClientError(err)
	}
	return nil
}

func toDomainClient(record *Client) *client.Client {
	return &client.Client{
		ID:        record.ID,
		Username:  record.Username,
		Password:  record.Password,
		Name:      record.Name,
		DOB:       record.DOB,
		Phones:    record.Phones,
		Emails:    record.Emails,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository returns an AccountRepository bound to the given session.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, a *account.Account) error {
	record := Account{
		ClientID:       a.ClientID,
		InitialBalance: a.InitialBalance,
		CurrentBalance: a.CurrentBalance,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return mapAccountError(err)
	}
	a.ID = record.ID
	return nil
}

func (r *accountRepository) GetByClientID(ctx context.Context, clientID uint) (*account.Account, error) {
	var record Account
	if err := r.db.WithContext(ctx).Where("client_id = ?", clientID).First(&record).Error; err != nil {
		return nil, mapAccountError(err)
	}
	return toDomainAccount(&record), nil
}

// GetByClientIDForUpdate locks the account row for the remainder of the
// enclosing transaction, so the sufficient-funds check and the balance write
// cannot be separated by a concurrent mutation.
func (r *accountRepository) GetByClientIDForUpdate(ctx context.Context, clientID uint) (*account.Account, error) {
	var record Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("client_id = ?", clientID).
		First(&record).Error
	if err != nil {
		return nil, mapAccountError(err)
	}
	return toDomainAccount(&record), nil
}

// ListForUpdate locks every account row for the accrual pass, serializing the
// whole-table update against concurrent transfers.
func (r *accountRepository) ListForUpdate(ctx context.Context) ([]*account.Account, error) {
	var records []Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, mapAccountError(err)
	}
	accounts := make([]*account.Account, 0, len(records))
	for i := range records {
		accounts = append(accounts, toDomainAccount(&records[i]))
	}
	return accounts, nil
}

func (r *accountRepository) UpdateBalance(ctx context.Context, accountID uint, balance float64) error {
	result := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", accountID).
		Updates(map[string]any{
			"current_balance": balance,
			"updated_at":      time.Now().UTC(),
		})
	if result.Error != nil {
		return mapAccountError(result.Error)
	}
	if result.RowsAffected == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

func toDomainAccount(record *Account) *account.Account {
	return &account.Account{
		ID:             record.ID,
		ClientID:       record.ClientID,
		InitialBalance: record.InitialBalance,
		CurrentBalance: record.CurrentBalance,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}
