package domain

import "errors"

var (
	ErrInvalidBetKind  = errors.New("invalid bet kind")
	ErrInvalidSelector = errors.New("invalid bet selector")
	ErrInvalidStake    = errors.New("stake must be a positive integer")
	ErrInvalidOutcome  = errors.New("outcome must be between 0 and 36")
	ErrNoBets          = errors.New("no bets placed")
	ErrRoundClosed     = errors.New("round is not accepting bets")
)
