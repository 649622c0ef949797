package domain

import "time"

// RoundState is the lifecycle of a round
type RoundState string

const (
	RoundStateBetting RoundState = "betting"
	RoundStateSettled RoundState = "settled"
)

// Round is the period between two spins whose bets share a ledger
type Round struct {
	RoundID    string
	State      RoundState
	Result     Outcome
	StartTime  time.Time
	TotalBets  int
	TotalStake int64
}

// NewRound creates a new round open for bets
func NewRound(roundID string) *Round {
	return &Round{
		RoundID:   roundID,
		State:     RoundStateBetting,
		StartTime: time.Now(),
	}
}

// CanAcceptBet checks if bets can be accepted
func (r *Round) CanAcceptBet() bool {
	return r.State == RoundStateBetting
}

// RecordBet adds a placed bet to the round totals
func (r *Round) RecordBet(stake int64) {
	r.TotalBets++
	r.TotalStake += stake
}

// Settle closes the round with the drawn outcome
func (r *Round) Settle(result Outcome) {
	r.State = RoundStateSettled
	r.Result = result
}
