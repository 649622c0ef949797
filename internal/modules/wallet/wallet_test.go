package wallet

import (
	"context"
	"testing"

	"github.com/frankieli/roulette/pkg/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ service.WalletService  = (*Wallet)(nil)
	_ service.SavingsService = (*Wallet)(nil)
)

func TestWallet_DeductAndAdd(t *testing.T) {
	ctx := context.Background()
	w := NewWallet(100)

	balance, err := w.DeductBalance(ctx, 40, "bet")
	require.NoError(t, err)
	assert.Equal(t, int64(60), balance)

	_, err = w.DeductBalance(ctx, 61, "bet")
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	_, err = w.DeductBalance(ctx, 0, "bet")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	balance, err = w.AddBalance(ctx, 0, "spin")
	require.NoError(t, err)
	assert.Equal(t, int64(60), balance)

	balance, err = w.AddBalance(ctx, 25, "spin")
	require.NoError(t, err)
	assert.Equal(t, int64(85), balance)

	_, err = w.AddBalance(ctx, -1, "spin")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	balance, _ = w.GetBalance(ctx)
	assert.Equal(t, int64(85), balance)
}

func TestWallet_Savings(t *testing.T) {
	ctx := context.Background()
	w := NewWallet(100)

	require.NoError(t, w.MoveToSavings(ctx, 70))
	assert.ErrorIs(t, w.MoveToSavings(ctx, 31), ErrInsufficientFunds)
	assert.ErrorIs(t, w.MoveFromSavings(ctx, 71), ErrInsufficientSavings)
	assert.ErrorIs(t, w.MoveFromSavings(ctx, -3), ErrInvalidAmount)

	require.NoError(t, w.CreditSavings(ctx, 5))
	require.NoError(t, w.MoveFromSavings(ctx, 20))

	balance, _ := w.GetBalance(ctx)
	savings, _ := w.GetSavings(ctx)
	assert.Equal(t, int64(50), balance)
	assert.Equal(t, int64(55), savings)
}
