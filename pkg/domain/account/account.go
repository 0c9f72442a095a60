// Package account holds the Account entity and the balance invariants the
// transfer engine and the interest accrual pass must respect.
package account

import (
	"errors"
	"math"
	"time"
)

// Default accrual parameters. InterestRate is applied once per accrual cycle;
// CapFactor bounds the balance at a fixed multiple of the original deposit.
const (
	InterestRate = 0.05
	CapFactor    = 2.07
)

var (
	// ErrAccountNotFound is returned when a client has no account record.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds is returned when a transfer would drive the source
	// balance below zero.
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrAmountMustBePositive is returned when a transfer amount is zero or
	// negative.
	ErrAmountMustBePositive = errors.New("transfer amount must be positive")

	// ErrTransferToSameAccount is returned when source and destination resolve
	// to the same account.
	ErrTransferToSameAccount = errors.New("cannot transfer to same account")
)

// Account is the financial record holding a client's balance.
//
// Invariants:
//   - InitialBalance is set once at creation and never changes; it is the basis
//     for the accrual cap.
//   - CurrentBalance is mutated only by the transfer engine and the accrual
//     pass, always inside a transaction supplied by the caller.
type Account struct {
	ID             uint
	ClientID       uint
	InitialBalance float64
	CurrentBalance float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// New opens an account for a client. The current balance starts equal to the
// initial deposit.
func New(clientID uint, initialBalance float64) *Account {
	now := time.Now().UTC()
	return &Account{
		ClientID:       clientID,
		InitialBalance: initialBalance,
		CurrentBalance: initialBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Cap returns the maximum balance this account may reach through accrual.
func (a *Account) Cap(capFactor float64) float64 {
	return a.InitialBalance * capFactor
}

// ValidateDebit checks that amount can be withdrawn without overdrawing.
func (a *Account) ValidateDebit(amount float64) error {
	if amount <= 0 {
		return ErrAmountMustBePositive
	}
	if a.CurrentBalance < amount {
		return ErrInsufficientFunds
	}
	return nil
}

// Debit subtracts amount from the current balance. Callers must run
// ValidateDebit first; Debit itself performs no checks.
func (a *Account) Debit(amount float64) {
	a.CurrentBalance -= amount
	a.UpdatedAt = time.Now().UTC()
}

// Credit adds amount to the current balance.
func (a *Account) Credit(amount float64) {
	a.CurrentBalance += amount
	a.UpdatedAt = time.Now().UTC()
}

// Accrue applies one interest cycle: the balance grows by rate but never past
// the cap. Applying Accrue to an account already at its cap is a no-op, so
// repeated cycles form an idempotent ceiling.
func (a *Account) Accrue(rate, capFactor float64) {
	a.CurrentBalance = math.Min(a.CurrentBalance*(1+rate), a.Cap(capFactor))
	a.UpdatedAt = time.Now().UTC()
}
