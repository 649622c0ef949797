package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/frankieli/roulette/internal/modules/roulette/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*BetRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewBetRepository(rdb), mr
}

func TestBetRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepo(t)

	placed := []*domain.Bet{
		domain.NewBet("r1", domain.NumberSelector{N: 0}, 10),
		domain.NewBet("r1", domain.RangeSelector{Range: domain.RangeHigh}, 20),
		domain.NewBet("r1", domain.ColumnSelector{Column: 2}, 30),
	}
	for _, bet := range placed {
		require.NoError(t, repo.SaveBet(ctx, bet))
	}

	bets, err := repo.GetBets(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, bets, len(placed))
	for i, bet := range bets {
		assert.Equal(t, placed[i].BetID, bet.BetID)
		assert.Equal(t, placed[i].Selector, bet.Selector)
		assert.Equal(t, placed[i].Stake, bet.Stake)
		assert.True(t, placed[i].Time.Equal(bet.Time))
	}

	assert.True(t, mr.Exists(dataKey("r1")))
	assert.True(t, mr.TTL(dataKey("r1")) > 0)

	require.NoError(t, repo.ClearBets(ctx, "r1"))
	assert.False(t, mr.Exists(dataKey("r1")))
	assert.False(t, mr.Exists(orderKey("r1")))

	bets, err = repo.GetBets(ctx, "r1")
	require.NoError(t, err)
	assert.Empty(t, bets)
}

func TestBetRepository_CorruptRecord(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepo(t)

	mr.RPush(orderKey("r9"), "42")
	mr.HSet(dataKey("r9"), "42", `{"bet_id":"42","kind":"color","arg":"green","stake":5}`)

	_, err := repo.GetBets(ctx, "r9")
	assert.ErrorIs(t, err, domain.ErrInvalidSelector)
}
