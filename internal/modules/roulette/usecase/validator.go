package usecase

import (
	"fmt"
	"strconv"

	"github.com/frankieli/roulette/internal/modules/roulette/domain"
)

// ValidateAndBuildBet turns a kind name, its selector arguments and a stake
// into a Bet. A rejected bet returns one of domain.ErrInvalidBetKind,
// domain.ErrInvalidSelector or domain.ErrInvalidStake and has no side effects.
func ValidateAndBuildBet(kind string, args []string, stake int64) (*domain.Bet, error) {
	betKind, err := domain.ParseBetKind(kind)
	if err != nil {
		return nil, err
	}

	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %s takes exactly one argument, got %d", domain.ErrInvalidSelector, betKind, len(args))
	}

	selector, err := domain.ParseSelector(betKind, args[0])
	if err != nil {
		return nil, err
	}

	if stake <= 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidStake, stake)
	}

	// The round is stamped on by the caller when the bet joins a ledger.
	return domain.NewBet("", selector, stake), nil
}

// ParseBetCommand parses the prompt form "<kind> <selector> <stake>".
func ParseBetCommand(tokens []string) (*domain.Bet, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: missing bet kind", domain.ErrInvalidBetKind)
	}

	kind := tokens[0]
	if len(tokens) < 2 {
		return ValidateAndBuildBet(kind, nil, 0)
	}

	args := tokens[1 : len(tokens)-1]
	stake, err := strconv.ParseInt(tokens[len(tokens)-1], 10, 64)
	if err != nil {
		// Report kind and selector problems before the stake.
		if _, kindErr := ValidateAndBuildBet(kind, args, 1); kindErr != nil {
			return nil, kindErr
		}
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStake, tokens[len(tokens)-1])
	}

	return ValidateAndBuildBet(kind, args, stake)
}
