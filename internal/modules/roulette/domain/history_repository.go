package domain

import "context"

// HistoryRepository persists settled bets and spins for auditing.
// It is write-mostly; nothing is ever loaded back into a session.
type HistoryRepository interface {
	// BatchCreateOrders stores the settled bets of one spin in a single transaction
	BatchCreateOrders(ctx context.Context, orders []*BetOrder) error

	// CreateSpin stores the spin summary
	CreateSpin(ctx context.Context, spin *SpinRecord) error

	// RecentSpins returns up to limit spins, newest first
	RecentSpins(ctx context.Context, limit int) ([]*SpinRecord, error)
}
