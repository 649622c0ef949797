package domain

import (
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Bet represents a single wager waiting for the next spin
type Bet struct {
	BetID    string
	RoundID  string
	Selector Selector
	Stake    int64
	Time     time.Time
}

var (
	node *snowflake.Node
	once sync.Once
)

func initSnowflake() {
	var err error
	// Single process, single table: node 1 is enough.
	node, err = snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
}

// NewBet creates a new bet. Callers validate selector and stake first.
func NewBet(roundID string, selector Selector, stake int64) *Bet {
	return &Bet{
		BetID:    generateBetID(),
		RoundID:  roundID,
		Selector: selector,
		Stake:    stake,
		Time:     time.Now(),
	}
}

// Kind is shorthand for b.Selector.Kind()
func (b *Bet) Kind() BetKind {
	return b.Selector.Kind()
}

// Area renders the bet as it is typed at the prompt, e.g. "dozen 2"
func (b *Bet) Area() string {
	return fmt.Sprintf("%s %s", b.Selector.Kind(), b.Selector.Arg())
}

func (b *Bet) String() string {
	return fmt.Sprintf("%s (stake %d)", b.Area(), b.Stake)
}

func generateBetID() string {
	once.Do(initSnowflake)
	return node.Generate().String()
}
