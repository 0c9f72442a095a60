// Package registry provides business logic for client registration and
// contact updates. Each operation runs inside one UnitOfWork transaction so a
// client and its account persist together or not at all.
package registry

import (
	"context"
	"log/slog"

	"github.com/minibank/ledger/pkg/domain/account"
	"github.com/minibank/ledger/pkg/domain/client"
	"github.com/minibank/ledger/pkg/repository"
	"github.com/minibank/ledger/pkg/utils"
)

// CreateInput carries the registration fields. DOB is the YYYY-MM-DD wire
// form; Password is the raw credential and is hashed here.
type CreateInput struct {
	Username       string
	Password       string
	Name           string
	DOB            string
	Phones         []string
	Emails         []string
	InitialBalance float64
}

// Service owns the Client aggregate and its 1:1 link to an Account.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a registry Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Create registers a client and opens its account with
// current_balance = initial_balance, as a single atomic unit. A username
// collision rolls the whole creation back and returns ErrUsernameTaken.
func (s *Service) Create(ctx context.Context, input CreateInput) (c *client.Client, err error) {
	log := s.logger.With("operation", "create_client", "username", input.Username)

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		log.Error("password hashing failed", "error", err)
		return nil, err
	}
	c, err = client.New(input.Username, hashed, input.Name, input.DOB, input.Phones, input.Emails)
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		clients, err := uow.ClientRepository()
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if err := clients.Create(ctx, c); err != nil {
			return err
		}
		return accounts.Create(ctx, account.New(c.ID, input.InitialBalance))
	})
	if err != nil {
		log.Error("client creation failed", "error", err)
		return nil, err
	}
	log.Info("client created", "client_id", c.ID)
	return c, nil
}

// Update replaces the phone and/or email lists of an existing client. A nil
// slice leaves the corresponding list untouched; every other field is
// immutable after registration. Unknown ids return ErrClientNotFound.
func (s *Service) Update(ctx context.Context, id uint, phones, emails []string) (c *client.Client, err error) {
	log := s.logger.With("operation", "update_client", "client_id", id)

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		clients, err := uow.ClientRepository()
		if err != nil {
			return err
		}
		c, err = clients.Get(ctx, id)
		if err != nil {
			return err
		}
		c.UpdateContacts(phones, emails)
		return clients.Update(ctx, c)
	})
	if err != nil {
		log.Error("client update failed", "error", err)
		return nil, err
	}
	log.Info("client updated")
	return c, nil
}

// Get returns a client by id.
func (s *Service) Get(ctx context.Context, id uint) (c *client.Client, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		clients, err := uow.ClientRepository()
		if err != nil {
			return err
		}
		c, err = clients.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
