package domain

import "context"

// BetRepository defines the interface for the pending-bet ledger
type BetRepository interface {
	// SaveBet appends a bet to its round's ledger
	SaveBet(ctx context.Context, bet *Bet) error

	// GetBets retrieves all bets for a round in placement order
	GetBets(ctx context.Context, roundID string) ([]*Bet, error)

	// ClearBets clears all bets for a round
	ClearBets(ctx context.Context, roundID string) error
}
