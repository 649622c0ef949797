package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/frankieli/roulette/internal/modules/economy/catalog"
	"github.com/frankieli/roulette/internal/modules/economy/domain"
	"github.com/frankieli/roulette/internal/modules/wallet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEconomyFixture(balance int64) (*EconomyUseCase, *wallet.Wallet, *domain.Profile) {
	w := wallet.NewWallet(balance)
	p := domain.NewProfile(decimal.RequireFromString("0.01"))
	return NewEconomyUseCase(w, p, catalog.Default()), w, p
}

func TestInvestWithdraw(t *testing.T) {
	ctx := context.Background()
	uc, w, _ := newEconomyFixture(1000)

	savings, err := uc.Invest(ctx, 400)
	require.NoError(t, err)
	assert.Equal(t, int64(400), savings)

	savings, err = uc.Withdraw(ctx, 150)
	require.NoError(t, err)
	assert.Equal(t, int64(250), savings)

	balance, _ := w.GetBalance(ctx)
	assert.Equal(t, int64(750), balance)
}

func TestInvestWithdraw_Rejects(t *testing.T) {
	ctx := context.Background()
	uc, w, _ := newEconomyFixture(100)

	_, err := uc.Invest(ctx, 0)
	assert.ErrorIs(t, err, wallet.ErrInvalidAmount)
	_, err = uc.Invest(ctx, 101)
	assert.ErrorIs(t, err, wallet.ErrInsufficientFunds)
	_, err = uc.Withdraw(ctx, -5)
	assert.ErrorIs(t, err, wallet.ErrInvalidAmount)
	_, err = uc.Withdraw(ctx, 1)
	assert.ErrorIs(t, err, wallet.ErrInsufficientSavings)

	balance, _ := w.GetBalance(ctx)
	savings, _ := w.GetSavings(ctx)
	assert.Equal(t, int64(100), balance)
	assert.Equal(t, int64(0), savings)
}

func TestAccrueInterest(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newEconomyFixture(1000)

	interest, savings, err := uc.AccrueInterest(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), interest)
	assert.Equal(t, int64(0), savings)

	_, err = uc.Invest(ctx, 1000)
	require.NoError(t, err)

	interest, savings, err = uc.AccrueInterest(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), interest)
	assert.Equal(t, int64(1010), savings)

	// floor(1010 * 0.01) = 10
	interest, savings, err = uc.AccrueInterest(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), interest)
	assert.Equal(t, int64(1020), savings)
}

func TestAccrueInterest_SmallSavingsEarnNothing(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newEconomyFixture(1000)

	_, err := uc.Invest(ctx, 99)
	require.NoError(t, err)

	interest, savings, err := uc.AccrueInterest(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), interest)
	assert.Equal(t, int64(99), savings)
}

func TestDonate(t *testing.T) {
	ctx := context.Background()
	uc, w, _ := newEconomyFixture(100)

	total, err := uc.Donate(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(30), total)

	total, err = uc.Donate(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(50), total)

	_, err = uc.Donate(ctx, 0)
	assert.ErrorIs(t, err, wallet.ErrInvalidAmount)
	_, err = uc.Donate(ctx, 51)
	assert.ErrorIs(t, err, wallet.ErrInsufficientFunds)

	balance, _ := w.GetBalance(ctx)
	assert.Equal(t, int64(50), balance)
}

func TestBuy(t *testing.T) {
	ctx := context.Background()
	uc, w, p := newEconomyFixture(1500)

	item, err := uc.Buy(ctx, "Safe")
	require.NoError(t, err)
	assert.Equal(t, "safe", item.Name)
	assert.Equal(t, "1.50%", p.RatePercent())

	_, err = uc.Buy(ctx, "course")
	require.NoError(t, err)
	assert.True(t, p.WorkMultiplier.Equal(decimal.RequireFromString("1.2")))

	_, err = uc.Buy(ctx, "safe")
	assert.ErrorIs(t, err, domain.ErrAlreadyOwned)

	_, err = uc.Buy(ctx, "yacht")
	assert.ErrorIs(t, err, domain.ErrUnknownItem)

	// 700 left, portfolio costs 1000
	_, err = uc.Buy(ctx, "portfolio")
	assert.ErrorIs(t, err, wallet.ErrInsufficientFunds)
	assert.False(t, p.Owns("portfolio"))
	assert.Equal(t, "1.50%", p.RatePercent())

	balance, _ := w.GetBalance(ctx)
	assert.Equal(t, int64(700), balance)

	summary, err := uc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"course", "safe"}, summary.Owned)
	assert.Equal(t, "1.50%", summary.SavingsRate)
	assert.Equal(t, "1.20", summary.WorkMultiplier)
}

func TestItems(t *testing.T) {
	uc, _, _ := newEconomyFixture(0)
	assert.Len(t, uc.Items(), 3)
}

// unreadableSavings moves money but cannot report the savings pot
type unreadableSavings struct {
	*wallet.Wallet
}

func (unreadableSavings) GetSavings(ctx context.Context) (int64, error) {
	return 0, errors.New("savings unavailable")
}

func TestInvestWithdraw_SavingsReadFailure(t *testing.T) {
	ctx := context.Background()
	w := unreadableSavings{wallet.NewWallet(100)}
	p := domain.NewProfile(decimal.RequireFromString("0.01"))
	uc := NewEconomyUseCase(w, p, catalog.Default())

	_, err := uc.Invest(ctx, 40)
	assert.ErrorContains(t, err, "savings unavailable")

	_, err = uc.Withdraw(ctx, 40)
	assert.ErrorContains(t, err, "savings unavailable")

	_, err = uc.Summary(ctx)
	assert.ErrorContains(t, err, "savings unavailable")
}
