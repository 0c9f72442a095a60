package repository

import "context"

// UnitOfWork defines the transaction boundary shared by every persisted
// mutation. Do runs fn inside one storage transaction; repositories obtained
// from the UnitOfWork passed to fn are bound to that transaction, so a debit
// and a credit issued through them commit or roll back together. If fn returns
// an error the transaction is rolled back and the error is returned unchanged.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// ClientRepository returns a ClientRepository bound to the current
	// transaction, or to the base session when called outside Do.
	ClientRepository() (ClientRepository, error)

	// AccountRepository returns an AccountRepository bound to the current
	// transaction, or to the base session when called outside Do.
	AccountRepository() (AccountRepository, error)
}
