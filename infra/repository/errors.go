package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/minibank/ledger/pkg/domain/account"
	"github.com/minibank/ledger/pkg/domain/client"
)

// mapClientError converts GORM errors raised on the clients table to domain
// errors, keeping database concerns out of the service layer. The error chain
// is walked because GORM wraps driver errors.
func mapClientError(err error) error {
	if err == nil {
		return nil
	}
	for current := err; current != nil; current = errors.Unwrap(current) {
		switch {
		case errors.Is(current, gorm.ErrDuplicatedKey):
			return client.ErrUsernameTaken
		case errors.Is(current, gorm.ErrRecordNotFound):
			return client.ErrClientNotFound
		}
	}
	return err
}

// mapAccountError is the accounts-table counterpart of mapClientError.
func mapAccountError(err error) error {
	if err == nil {
		return nil
	}
	for current := err; current != nil; current = errors.Unwrap(current) {
		if errors.Is(current, gorm.ErrRecordNotFound) {
			return account.ErrAccountNotFound
		}
	}
	return err
}
