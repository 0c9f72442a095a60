// Package auth issues login tokens for registered clients.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/minibank/ledger/config"
	"github.com/minibank/ledger/pkg/domain/client"
	"github.com/minibank/ledger/pkg/repository"
	"github.com/minibank/ledger/pkg/utils"
)

// ErrInvalidCredentials is returned for unknown usernames and wrong
// passwords alike, so callers cannot probe which usernames exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash keeps the bcrypt comparison on the unknown-username path so both
// failure paths cost the same.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Service authenticates clients and signs HS256 tokens.
type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
}

// New creates an auth Service.
func New(uow repository.UnitOfWork, cfg *config.Jwt, logger *slog.Logger) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// Login verifies a username/password pair and returns a signed token carrying
// the client id.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	log := s.logger.With("operation", "login", "username", username)

	var c *client.Client
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		clients, err := uow.ClientRepository()
		if err != nil {
			return err
		}
		c, err = clients.GetByUsername(ctx, username)
		return err
	})
	if err != nil {
		_ = utils.CheckPasswordHash(password, dummyHash)
		log.Warn("login failed", "error", ErrInvalidCredentials)
		return "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, c.Password) {
		log.Warn("login failed", "error", ErrInvalidCredentials)
		return "", ErrInvalidCredentials
	}

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["client_id"] = c.ID
	claims["username"] = c.Username
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		log.Error("token signing failed", "error", err)
		return "", err
	}
	log.Info("login successful", "client_id", c.ID)
	return signed, nil
}
