package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/frankieli/roulette/internal/modules/roulette/domain"
	"github.com/redis/go-redis/v9"
)

// BetRepository implements domain.BetRepository using Redis.
// Bets live in a hash keyed by bet id; a list keeps placement order.
type BetRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// betRecord is the stored form of a bet; the selector is kept as kind + argument
type betRecord struct {
	BetID   string    `json:"bet_id"`
	RoundID string    `json:"round_id"`
	Kind    string    `json:"kind"`
	Arg     string    `json:"arg"`
	Stake   int64     `json:"stake"`
	Time    time.Time `json:"time"`
}

// NewBetRepository creates a new Redis bet repository
func NewBetRepository(rdb *redis.Client) *BetRepository {
	return &BetRepository{
		rdb: rdb,
		ttl: 24 * time.Hour,
	}
}

func dataKey(roundID string) string  { return fmt.Sprintf("roulette:bet_data:%s", roundID) }
func orderKey(roundID string) string { return fmt.Sprintf("roulette:bet_order:%s", roundID) }

// SaveBet saves a bet
func (r *BetRepository) SaveBet(ctx context.Context, bet *domain.Bet) error {
	data, err := json.Marshal(betRecord{
		BetID:   bet.BetID,
		RoundID: bet.RoundID,
		Kind:    string(bet.Kind()),
		Arg:     bet.Selector.Arg(),
		Stake:   bet.Stake,
		Time:    bet.Time,
	})
	if err != nil {
		return err
	}

	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, dataKey(bet.RoundID), bet.BetID, data)
	pipe.Expire(ctx, dataKey(bet.RoundID), r.ttl)
	pipe.RPush(ctx, orderKey(bet.RoundID), bet.BetID)
	pipe.Expire(ctx, orderKey(bet.RoundID), r.ttl)

	_, err = pipe.Exec(ctx)
	return err
}

// GetBets retrieves all bets for a round in placement order
func (r *BetRepository) GetBets(ctx context.Context, roundID string) ([]*domain.Bet, error) {
	betIDs, err := r.rdb.LRange(ctx, orderKey(roundID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(betIDs) == 0 {
		return []*domain.Bet{}, nil
	}

	dataList, err := r.rdb.HMGet(ctx, dataKey(roundID), betIDs...).Result()
	if err != nil {
		return nil, err
	}

	bets := make([]*domain.Bet, 0, len(dataList))
	for i, data := range dataList {
		strData, ok := data.(string)
		if !ok {
			return nil, fmt.Errorf("bet %s missing from %s", betIDs[i], dataKey(roundID))
		}
		bet, err := decodeBet(strData)
		if err != nil {
			return nil, fmt.Errorf("failed to decode bet %s: %w", betIDs[i], err)
		}
		bets = append(bets, bet)
	}
	return bets, nil
}

// ClearBets clears all bets for a round
func (r *BetRepository) ClearBets(ctx context.Context, roundID string) error {
	return r.rdb.Del(ctx, dataKey(roundID), orderKey(roundID)).Err()
}

func decodeBet(data string) (*domain.Bet, error) {
	var rec betRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, err
	}

	kind, err := domain.ParseBetKind(rec.Kind)
	if err != nil {
		return nil, err
	}
	selector, err := domain.ParseSelector(kind, rec.Arg)
	if err != nil {
		return nil, err
	}

	return &domain.Bet{
		BetID:    rec.BetID,
		RoundID:  rec.RoundID,
		Selector: selector,
		Stake:    rec.Stake,
		Time:     rec.Time,
	}, nil
}
