package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/minibank/ledger/pkg/repository"
)

// UoW implements repository.UnitOfWork on top of a GORM transaction.
// Repositories handed out inside Do share the transaction session, so every
// mutation issued through them commits or rolls back as one unit.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a UnitOfWork for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn inside a database transaction. fn receives a UnitOfWork whose
// repositories are bound to that transaction; returning an error rolls the
// whole transaction back.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// session returns the transaction when inside Do, the base session otherwise.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// ClientRepository returns a ClientRepository bound to the current session.
func (u *UoW) ClientRepository() (repository.ClientRepository, error) {
	return NewClientRepository(u.session()), nil
}

// AccountRepository returns an AccountRepository bound to the current session.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return NewAccountRepository(u.session()), nil
}
