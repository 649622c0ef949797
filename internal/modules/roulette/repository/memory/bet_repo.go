// Package memory provides the in-process bet ledger.
package memory

import (
	"context"

	"github.com/frankieli/roulette/internal/modules/roulette/domain"
)

// BetRepository implements domain.BetRepository using memory.
// It belongs to a single session and is not safe for concurrent use.
type BetRepository struct {
	bets map[string][]*domain.Bet // roundID -> bets in placement order
}

// NewBetRepository creates a new memory bet repository
func NewBetRepository() *BetRepository {
	return &BetRepository{
		bets: make(map[string][]*domain.Bet),
	}
}

func (r *BetRepository) SaveBet(ctx context.Context, bet *domain.Bet) error {
	r.bets[bet.RoundID] = append(r.bets[bet.RoundID], bet)
	return nil
}

func (r *BetRepository) GetBets(ctx context.Context, roundID string) ([]*domain.Bet, error) {
	bets := r.bets[roundID]
	out := make([]*domain.Bet, len(bets))
	copy(out, bets)
	return out, nil
}

func (r *BetRepository) ClearBets(ctx context.Context, roundID string) error {
	delete(r.bets, roundID)
	return nil
}
