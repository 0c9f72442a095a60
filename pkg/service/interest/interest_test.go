package interest

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/minibank/ledger/config"
	"github.com/minibank/ledger/internal/fixtures"
	"github.com/minibank/ledger/pkg/domain/account"
)

func accrualConfig() *config.Accrual {
	return &config.Accrual{
		Interval:  time.Minute,
		Rate:      account.InterestRate,
		CapFactor: account.CapFactor,
	}
}

func TestRunCycle(t *testing.T) {
	uow := fixtures.NewMockUoW()
	svc := New(uow, accrualConfig(), slog.Default())

	a := account.New(1, 100)
	a.ID = 10
	uow.AccountRepo.On("ListForUpdate", mock.Anything).Return([]*account.Account{a}, nil)
	uow.AccountRepo.On("UpdateBalance", mock.Anything, uint(10), mock.Anything).Return(nil)

	require.NoError(t, svc.RunCycle(context.Background()))
	uow.AccountRepo.AssertCalled(t, "UpdateBalance", mock.Anything, uint(10), mock.MatchedBy(func(b float64) bool {
		return b > 104.999 && b < 105.001
	}))
}

func TestRunCycle_CappedAccountIsSkipped(t *testing.T) {
	uow := fixtures.NewMockUoW()
	svc := New(uow, accrualConfig(), slog.Default())

	capped := account.New(1, 100)
	capped.ID = 10
	capped.CurrentBalance = 207
	uow.AccountRepo.On("ListForUpdate", mock.Anything).Return([]*account.Account{capped}, nil)

	require.NoError(t, svc.RunCycle(context.Background()))
	uow.AccountRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunCycle_NeverExceedsCap(t *testing.T) {
	uow := fixtures.NewMockUoW()
	svc := New(uow, accrualConfig(), slog.Default())

	a := account.New(1, 100)
	a.ID = 10
	uow.AccountRepo.On("ListForUpdate", mock.Anything).Return([]*account.Account{a}, nil)
	uow.AccountRepo.On("UpdateBalance", mock.Anything, uint(10), mock.MatchedBy(func(b float64) bool {
		return b <= a.Cap(account.CapFactor)+1e-9
	})).Return(nil)

	for range 50 {
		require.NoError(t, svc.RunCycle(context.Background()))
	}
	assert.InDelta(t, 207, a.CurrentBalance, 1e-9)
}

func TestRunCycle_FailedPassIsAbandoned(t *testing.T) {
	uow := fixtures.NewMockUoW()
	svc := New(uow, accrualConfig(), slog.Default())

	uow.AccountRepo.On("ListForUpdate", mock.Anything).Return(nil, errors.New("db down"))

	assert.Error(t, svc.RunCycle(context.Background()))
	uow.AccountRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	uow := fixtures.NewMockUoW()
	cfg := accrualConfig()
	cfg.Interval = 5 * time.Millisecond
	svc := New(uow, cfg, slog.Default())

	uow.AccountRepo.On("ListForUpdate", mock.Anything).Return([]*account.Account{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Start(ctx)
		close(done)
	}()

	time.Sleep(25 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancellation")
	}
	uow.AccountRepo.AssertCalled(t, "ListForUpdate", mock.Anything)
}
