// Package wallet holds the player's money: a spendable balance and a savings pot.
package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/frankieli/roulette/pkg/logger"
)

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInsufficientSavings = errors.New("insufficient savings")
)

// Wallet implements service.WalletService for the single player of a session.
type Wallet struct {
	balance int64
	savings int64
}

// NewWallet creates a wallet with a starting balance
func NewWallet(balance int64) *Wallet {
	return &Wallet{balance: balance}
}

// GetBalance returns the spendable balance
func (w *Wallet) GetBalance(ctx context.Context) (int64, error) {
	return w.balance, nil
}

// GetSavings returns the savings pot
func (w *Wallet) GetSavings(ctx context.Context) (int64, error) {
	return w.savings, nil
}

// DeductBalance debits the balance; it never goes below zero.
func (w *Wallet) DeductBalance(ctx context.Context, amount int64, reason string) (int64, error) {
	if amount <= 0 {
		return w.balance, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	if amount > w.balance {
		return w.balance, fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, amount, w.balance)
	}

	w.balance -= amount
	logger.Debug(ctx).
		Int64("amount", amount).
		Int64("balance", w.balance).
		Str("reason", reason).
		Msg("Balance debited")
	return w.balance, nil
}

// AddBalance credits the balance. Zero is accepted so a losing spin can be
// credited without a special case.
func (w *Wallet) AddBalance(ctx context.Context, amount int64, reason string) (int64, error) {
	if amount < 0 {
		return w.balance, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}

	w.balance += amount
	logger.Debug(ctx).
		Int64("amount", amount).
		Int64("balance", w.balance).
		Str("reason", reason).
		Msg("Balance credited")
	return w.balance, nil
}

// MoveToSavings transfers amount from balance to savings
func (w *Wallet) MoveToSavings(ctx context.Context, amount int64) error {
	if _, err := w.DeductBalance(ctx, amount, "invest"); err != nil {
		return err
	}
	w.savings += amount
	return nil
}

// MoveFromSavings transfers amount from savings back to balance
func (w *Wallet) MoveFromSavings(ctx context.Context, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	if amount > w.savings {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientSavings, amount, w.savings)
	}

	w.savings -= amount
	w.balance += amount
	return nil
}

// CreditSavings adds interest to the savings pot
func (w *Wallet) CreditSavings(ctx context.Context, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	w.savings += amount
	return nil
}
