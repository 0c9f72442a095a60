// Package transfer implements the transfer engine: a debit on one account
// and a credit on another applied as one atomic transaction.
package transfer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/minibank/ledger/pkg/domain/account"
	"github.com/minibank/ledger/pkg/domain/client"
	"github.com/minibank/ledger/pkg/repository"
)

// Receipt reports a completed transfer. Reference is a correlation id for
// logs and API responses; the ledger keeps no transaction history.
type Receipt struct {
	Reference   uuid.UUID
	FromBalance float64
	ToBalance   float64
}

// Service coordinates atomic transfers between two client accounts.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a transfer Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Transfer moves amount from one client's account to another's.
//
// Non-positive amounts and self-transfers are rejected before any I/O. Both
// account rows are locked in ascending client-id order for the span of the
// transaction, so the sufficient-funds check and the two balance writes form
// one serialized unit: observers never see a half-applied transfer, and
// concurrent transfers cannot overdraw an account. Any failure rolls both
// writes back.
func (s *Service) Transfer(ctx context.Context, fromClientID, toClientID uint, amount float64) (*Receipt, error) {
	reference := uuid.New()
	log := s.logger.With(
		"operation", "transfer",
		"reference", reference,
		"from_client_id", fromClientID,
		"to_client_id", toClientID,
		"amount", amount,
	)

	if amount <= 0 {
		return nil, account.ErrAmountMustBePositive
	}
	if fromClientID == toClientID {
		return nil, account.ErrTransferToSameAccount
	}

	var receipt *Receipt
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}

		// Lock in ascending client-id order so two opposing transfers on the
		// same pair cannot deadlock.
		first, second := fromClientID, toClientID
		if second < first {
			first, second = second, first
		}
		locked := make(map[uint]*account.Account, 2)
		for _, id := range []uint{first, second} {
			acc, err := accounts.GetByClientIDForUpdate(ctx, id)
			if err != nil {
				if errors.Is(err, account.ErrAccountNotFound) {
					return client.ErrClientNotFound
				}
				return err
			}
			locked[id] = acc
		}
		from, to := locked[fromClientID], locked[toClientID]

		if err := from.ValidateDebit(amount); err != nil {
			return err
		}
		from.Debit(amount)
		to.Credit(amount)

		if err := accounts.UpdateBalance(ctx, from.ID, from.CurrentBalance); err != nil {
			return err
		}
		if err := accounts.UpdateBalance(ctx, to.ID, to.CurrentBalance); err != nil {
			return err
		}
		receipt = &Receipt{
			Reference:   reference,
			FromBalance: from.CurrentBalance,
			ToBalance:   to.CurrentBalance,
		}
		return nil
	})
	if err != nil {
		log.Error("transfer failed", "error", err)
		return nil, err
	}
	log.Info("transfer completed",
		"from_balance", receipt.FromBalance,
		"to_balance", receipt.ToBalance,
	)
	return receipt, nil
}
