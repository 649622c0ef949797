package memory

import (
	"context"
	"testing"

	"github.com/frankieli/roulette/internal/modules/roulette/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBetRepository()

	a := domain.NewBet("r1", domain.NumberSelector{N: 3}, 10)
	b := domain.NewBet("r1", domain.ColorSelector{Color: domain.ColorRed}, 20)
	other := domain.NewBet("r2", domain.DozenSelector{Dozen: 1}, 5)

	require.NoError(t, repo.SaveBet(ctx, a))
	require.NoError(t, repo.SaveBet(ctx, b))
	require.NoError(t, repo.SaveBet(ctx, other))

	bets, err := repo.GetBets(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, []*domain.Bet{a, b}, bets)

	// Callers get a copy of the ledger slice.
	bets[0] = nil
	again, _ := repo.GetBets(ctx, "r1")
	assert.Equal(t, a, again[0])

	require.NoError(t, repo.ClearBets(ctx, "r1"))
	bets, err = repo.GetBets(ctx, "r1")
	require.NoError(t, err)
	assert.Empty(t, bets)

	bets, _ = repo.GetBets(ctx, "r2")
	assert.Len(t, bets, 1)
}
