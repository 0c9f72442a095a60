// Package interest implements the periodic interest accrual pass: every
// account grows by a fixed rate per cycle, capped at a multiple of its
// initial deposit.
package interest

import (
	"context"
	"log/slog"
	"time"

	"github.com/minibank/ledger/config"
	"github.com/minibank/ledger/pkg/repository"
)

// Service runs the accrual pass on a fixed interval.
type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Accrual
	logger *slog.Logger
}

// New creates an interest Service.
func New(uow repository.UnitOfWork, cfg *config.Accrual, logger *slog.Logger) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// RunCycle applies one accrual pass over every account as a single
// transaction: all rows are locked, recomputed and written under one commit,
// so a failed commit abandons the whole cycle and readers never observe a
// partially accrued table. Accounts already at their cap stay unchanged.
func (s *Service) RunCycle(ctx context.Context) error {
	start := time.Now()
	var updated int
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		all, err := accounts.ListForUpdate(ctx)
		if err != nil {
			return err
		}
		for _, acc := range all {
			before := acc.CurrentBalance
			acc.Accrue(s.cfg.Rate, s.cfg.CapFactor)
			if acc.CurrentBalance == before {
				continue
			}
			if err := accounts.UpdateBalance(ctx, acc.ID, acc.CurrentBalance); err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		s.logger.Error("accrual cycle failed", "error", err)
		return err
	}
	s.logger.Info("accrual cycle completed",
		"accounts_updated", updated,
		"duration", time.Since(start),
	)
	return nil
}

// Start runs accrual cycles on the configured interval until ctx is
// cancelled. A failed cycle is logged and the loop continues with the next
// tick; its updates were already rolled back.
func (s *Service) Start(ctx context.Context) {
	s.logger.Info("interest scheduler started", "interval", s.cfg.Interval)
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("interest scheduler stopped")
			return
		case <-ticker.C:
			// Errors are already logged; the next tick retries.
			_ = s.RunCycle(ctx)
		}
	}
}
