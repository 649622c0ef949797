// Package usecase implements bet validation, resolution and the betting flow of the roulette table.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/frankieli/roulette/internal/modules/roulette/domain"
	"github.com/frankieli/roulette/internal/modules/roulette/machine"
	"github.com/frankieli/roulette/pkg/logger"
	"github.com/frankieli/roulette/pkg/service"
)

// SpinResult is what the player sees after a spin
type SpinResult struct {
	RoundID string
	Color   domain.Color
	*Resolution
	Balance int64
}

// RouletteUseCase handles placing bets and spinning the wheel
type RouletteUseCase struct {
	betRepo     domain.BetRepository
	historyRepo domain.HistoryRepository
	table       *machine.Table
	walletSvc   service.WalletService
}

// NewRouletteUseCase creates a new roulette use case. historyRepo may be nil.
func NewRouletteUseCase(
	betRepo domain.BetRepository,
	historyRepo domain.HistoryRepository,
	table *machine.Table,
	walletSvc service.WalletService,
) *RouletteUseCase {
	return &RouletteUseCase{
		betRepo:     betRepo,
		historyRepo: historyRepo,
		table:       table,
		walletSvc:   walletSvc,
	}
}

// PlaceBet validates a bet typed as "<kind> <selector> <stake>", debits the
// stake and adds the bet to the open round's ledger. On any error nothing changes.
func (uc *RouletteUseCase) PlaceBet(ctx context.Context, tokens []string) (*domain.Bet, error) {
	round := uc.table.CurrentRound()
	ctx = logger.WithFields(ctx, map[string]interface{}{
		"round_id": round.RoundID,
	})

	// 1. Validate
	bet, err := ParseBetCommand(tokens)
	if err != nil {
		logger.Warn(ctx).
			Err(err).
			Strs("tokens", tokens).
			Msg("Bet rejected")
		return nil, err
	}
	bet.RoundID = round.RoundID

	if err := uc.table.CheckOpen(); err != nil {
		logger.Warn(ctx).Err(err).Msg("Bet rejected")
		return nil, err
	}

	// 2. Deduct from wallet
	if _, err := uc.walletSvc.DeductBalance(ctx, bet.Stake, "bet:"+round.RoundID); err != nil {
		logger.Warn(ctx).
			Err(err).
			Int64("stake", bet.Stake).
			Msg("Stake debit failed")
		return nil, err
	}

	// 3. Save to ledger, refunding if that fails
	if err := uc.betRepo.SaveBet(ctx, bet); err != nil {
		logger.Error(ctx).
			Err(err).
			Str("bet_id", bet.BetID).
			Msg("Failed to save bet, refunding stake")
		if _, refundErr := uc.walletSvc.AddBalance(ctx, bet.Stake, "refund:"+bet.BetID); refundErr != nil {
			logger.Error(ctx).Err(refundErr).Str("bet_id", bet.BetID).Msg("Refund failed")
		}
		return nil, fmt.Errorf("failed to save bet: %w", err)
	}

	// the round was open before the debit and nothing since can close it
	if err := uc.table.RecordBet(bet.Stake); err != nil {
		logger.Error(ctx).Err(err).Str("bet_id", bet.BetID).Msg("Failed to record bet on table")
		return nil, err
	}

	logger.Info(ctx).
		Str("bet_id", bet.BetID).
		Str("bet_area", bet.Area()).
		Int64("stake", bet.Stake).
		Msg("Bet placed")

	return bet, nil
}

// PendingBets returns the open round's ledger
func (uc *RouletteUseCase) PendingBets(ctx context.Context) ([]*domain.Bet, error) {
	return uc.betRepo.GetBets(ctx, uc.table.CurrentRound().RoundID)
}

// Spin resolves every pending bet against one wheel outcome, credits the
// total return and clears the ledger. It fails with domain.ErrNoBets when
// nothing is staked.
func (uc *RouletteUseCase) Spin(ctx context.Context) (*SpinResult, error) {
	startTime := time.Now()
	roundID := uc.table.CurrentRound().RoundID
	ctx = logger.WithFields(ctx, map[string]interface{}{
		"round_id": roundID,
	})

	// 1. Load ledger
	bets, err := uc.betRepo.GetBets(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets: %w", err)
	}
	if len(bets) == 0 {
		return nil, domain.ErrNoBets
	}

	// 2. Draw
	settled, err := uc.table.Spin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to spin: %w", err)
	}

	// 3. Resolve and pay
	res, err := Resolve(bets, settled.Result)
	if err != nil {
		return nil, err
	}

	balance, err := uc.walletSvc.AddBalance(ctx, res.TotalReturn, "win:"+roundID)
	if err != nil {
		uc.carryOver(ctx, roundID, bets)
		return nil, fmt.Errorf("failed to credit winnings: %w", err)
	}

	// 4. History is best effort
	uc.recordHistory(ctx, roundID, res)

	// 5. Clear ledger
	if err := uc.betRepo.ClearBets(ctx, roundID); err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to clear bets")
	}

	winCount := 0
	for _, s := range res.Settlements {
		if s.Won {
			winCount++
		}
	}

	logger.Info(ctx).
		Int("outcome", settled.Result).
		Int("total_bets", len(bets)).
		Int("win_count", winCount).
		Int("lose_count", len(bets)-winCount).
		Int64("total_return", res.TotalReturn).
		Int64("balance", balance).
		Dur("duration_ms", time.Since(startTime)).
		Msg("Settlement completed")

	return &SpinResult{
		RoundID:    roundID,
		Color:      domain.ColorOf(settled.Result),
		Resolution: res,
		Balance:    balance,
	}, nil
}

// History returns up to limit recent spins, newest first
func (uc *RouletteUseCase) History(ctx context.Context, limit int) ([]*domain.SpinRecord, error) {
	if uc.historyRepo == nil {
		return nil, nil
	}
	return uc.historyRepo.RecentSpins(ctx, limit)
}

// carryOver moves an unpaid ledger into the round the table has just opened,
// so the stakes stay pending and are resolved by the next spin.
func (uc *RouletteUseCase) carryOver(ctx context.Context, fromRound string, bets []*domain.Bet) {
	toRound := uc.table.CurrentRound().RoundID

	moved := 0
	for _, bet := range bets {
		bet.RoundID = toRound
		if err := uc.betRepo.SaveBet(ctx, bet); err != nil {
			logger.Error(ctx).Err(err).Str("bet_id", bet.BetID).Msg("Failed to carry bet over")
			continue
		}
		if err := uc.table.RecordBet(bet.Stake); err != nil {
			logger.Error(ctx).Err(err).Str("bet_id", bet.BetID).Msg("Failed to record carried bet")
		}
		moved++
	}

	if err := uc.betRepo.ClearBets(ctx, fromRound); err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to clear bets")
	}

	logger.Warn(ctx).
		Str("to_round", toRound).
		Int("moved", moved).
		Int("total_bets", len(bets)).
		Msg("Credit failed, bets carried over to the next round")
}

func (uc *RouletteUseCase) recordHistory(ctx context.Context, roundID string, res *Resolution) {
	if uc.historyRepo == nil {
		return
	}

	now := time.Now()
	orders := make([]*domain.BetOrder, 0, len(res.Settlements))
	var totalStake int64
	for _, s := range res.Settlements {
		orders = append(orders, &domain.BetOrder{
			OrderID:   s.Bet.BetID,
			RoundID:   roundID,
			BetKind:   string(s.Bet.Kind()),
			BetArea:   s.Bet.Selector.Arg(),
			Stake:     s.Bet.Stake,
			Payout:    s.Return,
			Outcome:   res.Outcome,
			CreatedAt: s.Bet.Time,
			SettledAt: now,
		})
		totalStake += s.Bet.Stake
	}

	if err := uc.historyRepo.BatchCreateOrders(ctx, orders); err != nil {
		logger.Error(ctx).Err(err).Int("count", len(orders)).Msg("Failed to persist bet orders")
	}

	spin := &domain.SpinRecord{
		RoundID:     roundID,
		Outcome:     res.Outcome,
		Color:       domain.ColorOf(res.Outcome).String(),
		TotalBets:   len(res.Settlements),
		TotalStake:  totalStake,
		TotalReturn: res.TotalReturn,
		SpunAt:      now,
	}
	if err := uc.historyRepo.CreateSpin(ctx, spin); err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to persist spin record")
	}
}
