package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/frankieli/roulette/internal/modules/roulette/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) (*HistoryRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	repo := NewHistoryRepository(db)
	require.NoError(t, repo.AutoMigrate())
	return repo, db
}

func TestHistoryRepository_Orders(t *testing.T) {
	ctx := context.Background()
	repo, db := newTestRepo(t)

	now := time.Now()
	orders := []*domain.BetOrder{
		{OrderID: "1", RoundID: "r1", BetKind: "number", BetArea: "7", Stake: 10, Payout: 360, Outcome: 7, CreatedAt: now, SettledAt: now},
		{OrderID: "2", RoundID: "r1", BetKind: "color", BetArea: "black", Stake: 10, Payout: 0, Outcome: 7, CreatedAt: now, SettledAt: now},
	}
	require.NoError(t, repo.BatchCreateOrders(ctx, orders))
	require.NoError(t, repo.BatchCreateOrders(ctx, nil))

	var stored []domain.BetOrder
	require.NoError(t, db.Where("round_id = ?", "r1").Order("order_id").Find(&stored).Error)
	require.Len(t, stored, 2)
	assert.Equal(t, int64(360), stored[0].Payout)
	assert.Equal(t, "black", stored[1].BetArea)
}

func TestHistoryRepository_RecentSpins(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	base := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.CreateSpin(ctx, &domain.SpinRecord{
			RoundID: fmt.Sprintf("r%d", i),
			Outcome: i,
			Color:   domain.ColorOf(i).String(),
			SpunAt:  base.Add(time.Duration(i) * time.Second),
		}))
	}

	spins, err := repo.RecentSpins(ctx, 3)
	require.NoError(t, err)
	require.Len(t, spins, 3)
	assert.Equal(t, "r4", spins[0].RoundID)
	assert.Equal(t, "r3", spins[1].RoundID)
	assert.Equal(t, "r2", spins[2].RoundID)
}
