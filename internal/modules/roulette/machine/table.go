package machine

import (
	"context"
	"fmt"

	"github.com/frankieli/roulette/internal/modules/roulette/domain"
	"github.com/frankieli/roulette/pkg/logger"
)

// SpinEvent is emitted once per spin, after the round is settled
type SpinEvent struct {
	Round   RoundView
	Outcome domain.Outcome
	Color   domain.Color
}

// EventHandler handles spin events
type EventHandler func(ctx context.Context, event SpinEvent)

// RoundView is a read-only snapshot of a round
type RoundView struct {
	RoundID    string
	State      domain.RoundState
	Result     domain.Outcome
	TotalBets  int
	TotalStake int64
}

// Table owns the round lifecycle: bets are recorded against the open round,
// Spin settles it and opens the next one. Handlers run synchronously.
type Table struct {
	currentRound *domain.Round
	roundCounter int

	wheel         domain.OutcomeGenerator
	eventHandlers []EventHandler
}

// NewTable creates a table with its first round open
func NewTable(wheel domain.OutcomeGenerator) *Table {
	t := &Table{wheel: wheel}
	t.openRound()
	return t
}

// RegisterEventHandler registers an event handler
func (t *Table) RegisterEventHandler(handler EventHandler) {
	t.eventHandlers = append(t.eventHandlers, handler)
}

// CurrentRound returns a snapshot of the open round
func (t *Table) CurrentRound() RoundView {
	return viewOf(t.currentRound)
}

// CheckOpen fails with domain.ErrRoundClosed while the current round is
// being settled, e.g. from inside a spin event handler.
func (t *Table) CheckOpen() error {
	if !t.currentRound.CanAcceptBet() {
		return fmt.Errorf("%w: %s", domain.ErrRoundClosed, t.currentRound.RoundID)
	}
	return nil
}

// RecordBet adds a placed bet to the open round's totals
func (t *Table) RecordBet(stake int64) error {
	if err := t.CheckOpen(); err != nil {
		return err
	}
	t.currentRound.RecordBet(stake)
	return nil
}

// Spin draws an outcome, settles the open round and opens the next one.
// The returned view is the settled round.
func (t *Table) Spin(ctx context.Context) (RoundView, error) {
	outcome := t.wheel.NextOutcome()
	if !domain.IsValidOutcome(outcome) {
		return RoundView{}, fmt.Errorf("wheel produced %d: %w", outcome, domain.ErrInvalidOutcome)
	}

	round := t.currentRound
	round.Settle(outcome)
	settled := viewOf(round)

	logger.Info(ctx).
		Str("round_id", round.RoundID).
		Int("outcome", outcome).
		Str("color", domain.ColorOf(outcome).String()).
		Int("total_bets", round.TotalBets).
		Int64("total_stake", round.TotalStake).
		Msg("🎲 Wheel stopped")

	event := SpinEvent{
		Round:   settled,
		Outcome: outcome,
		Color:   domain.ColorOf(outcome),
	}
	for _, handler := range t.eventHandlers {
		handler(ctx, event)
	}

	t.openRound()
	return settled, nil
}

func (t *Table) openRound() {
	t.roundCounter++
	t.currentRound = domain.NewRound(t.generateRoundID())
}

func (t *Table) generateRoundID() string {
	return fmt.Sprintf("%s-%04d", logger.SessionID(), t.roundCounter)
}

func viewOf(r *domain.Round) RoundView {
	return RoundView{
		RoundID:    r.RoundID,
		State:      r.State,
		Result:     r.Result,
		TotalBets:  r.TotalBets,
		TotalStake: r.TotalStake,
	}
}
