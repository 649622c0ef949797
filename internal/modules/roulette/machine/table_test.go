package machine

import (
	"context"
	"math/rand"
	"testing"

	"github.com/frankieli/roulette/internal/modules/roulette/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedWheel struct {
	outcomes []int
	next     int
}

func (w *fixedWheel) NextOutcome() domain.Outcome {
	o := w.outcomes[w.next%len(w.outcomes)]
	w.next++
	return o
}

func TestTable_SpinSettlesAndOpensNextRound(t *testing.T) {
	ctx := context.Background()
	table := NewTable(&fixedWheel{outcomes: []int{17, 0}})

	first := table.CurrentRound()
	assert.Equal(t, domain.RoundStateBetting, first.State)

	require.NoError(t, table.RecordBet(10))
	require.NoError(t, table.RecordBet(5))

	var events []SpinEvent
	table.RegisterEventHandler(func(ctx context.Context, e SpinEvent) {
		events = append(events, e)
	})

	settled, err := table.Spin(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.RoundID, settled.RoundID)
	assert.Equal(t, domain.RoundStateSettled, settled.State)
	assert.Equal(t, 17, settled.Result)
	assert.Equal(t, 2, settled.TotalBets)
	assert.Equal(t, int64(15), settled.TotalStake)

	require.Len(t, events, 1)
	assert.Equal(t, domain.ColorBlack, events[0].Color)

	next := table.CurrentRound()
	assert.NotEqual(t, first.RoundID, next.RoundID)
	assert.Equal(t, domain.RoundStateBetting, next.State)
	assert.Zero(t, next.TotalBets)

	settled, err = table.Spin(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, settled.Result)
	assert.Equal(t, domain.ColorGreen, events[1].Color)
}

func TestTable_RejectsBrokenWheel(t *testing.T) {
	table := NewTable(&fixedWheel{outcomes: []int{37}})
	_, err := table.Spin(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidOutcome)
}

func TestRandomWheel_CoversEveryPocket(t *testing.T) {
	wheel := NewRandomWheel(rand.New(rand.NewSource(7)))

	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		o := wheel.NextOutcome()
		require.True(t, domain.IsValidOutcome(o), "got %d", o)
		seen[o] = true
	}
	assert.Len(t, seen, domain.Pockets)
}

func TestTable_ClosedDuringSettlement(t *testing.T) {
	table := NewTable(&fixedWheel{outcomes: []int{5}})
	assert.NoError(t, table.CheckOpen())

	var checkErr, recordErr error
	table.RegisterEventHandler(func(ctx context.Context, e SpinEvent) {
		checkErr = table.CheckOpen()
		recordErr = table.RecordBet(10)
	})

	settled, err := table.Spin(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, checkErr, domain.ErrRoundClosed)
	assert.ErrorIs(t, recordErr, domain.ErrRoundClosed)
	assert.Zero(t, settled.TotalBets)
	assert.NoError(t, table.CheckOpen())
}
