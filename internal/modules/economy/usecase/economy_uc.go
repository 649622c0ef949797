// Package usecase implements savings, donations, the shop and the work minigame.
package usecase

import (
	"context"
	"fmt"

	"github.com/frankieli/roulette/internal/modules/economy/catalog"
	"github.com/frankieli/roulette/internal/modules/economy/domain"
	"github.com/frankieli/roulette/pkg/logger"
	"github.com/frankieli/roulette/pkg/service"
)

// Summary is the player's money at a glance
type Summary struct {
	Balance        int64
	Savings        int64
	SavingsRate    string
	WorkMultiplier string
	Owned          []string
	CharityTotal   int64
}

// EconomyUseCase moves money between the balance, savings, the shop and charity
type EconomyUseCase struct {
	wallet  service.SavingsService
	profile *domain.Profile
	catalog *catalog.Catalog
}

// NewEconomyUseCase creates a new economy use case
func NewEconomyUseCase(w service.SavingsService, profile *domain.Profile, c *catalog.Catalog) *EconomyUseCase {
	return &EconomyUseCase{
		wallet:  w,
		profile: profile,
		catalog: c,
	}
}

// AccrueInterest credits floor(savings * rate) to savings. It returns the
// interest paid (possibly 0) and the new savings.
func (uc *EconomyUseCase) AccrueInterest(ctx context.Context) (int64, int64, error) {
	savings, err := uc.wallet.GetSavings(ctx)
	if err != nil {
		return 0, 0, err
	}

	interest := uc.profile.Interest(savings)
	if interest <= 0 {
		return 0, savings, nil
	}

	if err := uc.wallet.CreditSavings(ctx, interest); err != nil {
		return 0, savings, err
	}

	logger.Debug(ctx).
		Int64("interest", interest).
		Int64("savings", savings+interest).
		Str("rate", uc.profile.SavingsRate.String()).
		Msg("Interest accrued")
	return interest, savings + interest, nil
}

// Invest moves amount from balance to savings and returns the new savings
func (uc *EconomyUseCase) Invest(ctx context.Context, amount int64) (int64, error) {
	if err := uc.wallet.MoveToSavings(ctx, amount); err != nil {
		logger.Warn(ctx).Err(err).Int64("amount", amount).Msg("Invest rejected")
		return 0, err
	}

	savings, err := uc.wallet.GetSavings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read savings: %w", err)
	}
	logger.Info(ctx).Int64("amount", amount).Int64("savings", savings).Msg("Invested")
	return savings, nil
}

// Withdraw moves amount from savings back to balance and returns the new savings
func (uc *EconomyUseCase) Withdraw(ctx context.Context, amount int64) (int64, error) {
	if err := uc.wallet.MoveFromSavings(ctx, amount); err != nil {
		logger.Warn(ctx).Err(err).Int64("amount", amount).Msg("Withdraw rejected")
		return 0, err
	}

	savings, err := uc.wallet.GetSavings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read savings: %w", err)
	}
	logger.Info(ctx).Int64("amount", amount).Int64("savings", savings).Msg("Withdrawn")
	return savings, nil
}

// Donate gives amount away and returns the charity total so far
func (uc *EconomyUseCase) Donate(ctx context.Context, amount int64) (int64, error) {
	if _, err := uc.wallet.DeductBalance(ctx, amount, "donate"); err != nil {
		logger.Warn(ctx).Err(err).Int64("amount", amount).Msg("Donation rejected")
		return 0, err
	}

	uc.profile.CharityTotal += amount
	logger.Info(ctx).
		Int64("amount", amount).
		Int64("charity_total", uc.profile.CharityTotal).
		Msg("💝 Donated")
	return uc.profile.CharityTotal, nil
}

// Items lists the shop
func (uc *EconomyUseCase) Items() []domain.Item {
	return uc.catalog.Items()
}

// Buy purchases an item once and applies its effect for the rest of the session
func (uc *EconomyUseCase) Buy(ctx context.Context, name string) (*domain.Item, error) {
	item, ok := uc.catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownItem, name)
	}
	if uc.profile.Owns(item.Name) {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, item.Name)
	}

	if _, err := uc.wallet.DeductBalance(ctx, item.Price, "buy:"+item.Name); err != nil {
		logger.Warn(ctx).Err(err).Str("item", item.Name).Msg("Purchase rejected")
		return nil, err
	}

	uc.profile.Apply(item)
	logger.Info(ctx).
		Str("item", item.Name).
		Int64("price", item.Price).
		Str("savings_rate", uc.profile.SavingsRate.String()).
		Str("work_multiplier", uc.profile.WorkMultiplier.String()).
		Msg("🛒 Item bought")
	return &item, nil
}

// Summary reports balance, savings, rates and upgrades
func (uc *EconomyUseCase) Summary(ctx context.Context) (*Summary, error) {
	balance, err := uc.wallet.GetBalance(ctx)
	if err != nil {
		return nil, err
	}
	savings, err := uc.wallet.GetSavings(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Balance:        balance,
		Savings:        savings,
		SavingsRate:    uc.profile.RatePercent(),
		WorkMultiplier: uc.profile.WorkMultiplier.StringFixed(2),
		Owned:          uc.profile.OwnedItems(),
		CharityTotal:   uc.profile.CharityTotal,
	}, nil
}
