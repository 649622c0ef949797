package usecase

import (
	"fmt"

	"github.com/frankieli/roulette/internal/modules/roulette/domain"
)

// Settlement is the result of one bet against one outcome
type Settlement struct {
	Bet    *domain.Bet
	Won    bool
	Return int64 // stake * (ratio + 1) on a win, 0 otherwise
}

// Net is the player's gain on this bet relative to the stake already paid
func (s Settlement) Net() int64 {
	return s.Return - s.Bet.Stake
}

// Resolution is the settlement of a whole ledger
type Resolution struct {
	Outcome     domain.Outcome
	Settlements []Settlement
	TotalReturn int64
}

// Resolve settles every bet against outcome. It is pure: the ledger is not
// modified and the same input always gives the same output.
func Resolve(bets []*domain.Bet, outcome domain.Outcome) (*Resolution, error) {
	if !domain.IsValidOutcome(outcome) {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidOutcome, outcome)
	}

	res := &Resolution{
		Outcome:     outcome,
		Settlements: make([]Settlement, 0, len(bets)),
	}

	for _, bet := range bets {
		s := Settlement{Bet: bet}
		if wins(bet.Selector, outcome) {
			s.Won = true
			s.Return = bet.Stake * (domain.PayoutRatios[bet.Kind()] + 1)
		}
		res.Settlements = append(res.Settlements, s)
		res.TotalReturn += s.Return
	}

	return res, nil
}

// wins reports whether selector covers outcome. Zero only pays a straight bet on 0.
func wins(selector domain.Selector, outcome domain.Outcome) bool {
	switch s := selector.(type) {
	case domain.NumberSelector:
		return outcome == s.N
	}

	if outcome == 0 {
		return false
	}

	switch s := selector.(type) {
	case domain.ColorSelector:
		return domain.ColorOf(outcome) == s.Color
	case domain.ParitySelector:
		even := outcome%2 == 0
		return even == (s.Parity == domain.ParityEven)
	case domain.RangeSelector:
		if s.Range == domain.RangeLow {
			return outcome <= 18
		}
		return outcome >= 19
	case domain.DozenSelector:
		return (outcome-1)/12+1 == s.Dozen
	case domain.ColumnSelector:
		return domain.InColumn(outcome, s.Column)
	default:
		return false
	}
}
