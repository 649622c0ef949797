package domain

import "time"

// BetOrder is the settled record of one bet
type BetOrder struct {
	OrderID   string    `gorm:"primaryKey;type:varchar(64)" json:"order_id"`
	RoundID   string    `gorm:"type:varchar(64);not null;index:idx_bet_orders_round_id" json:"round_id"`
	BetKind   string    `gorm:"type:varchar(16);not null" json:"bet_kind"`
	BetArea   string    `gorm:"type:varchar(16);not null" json:"bet_area"` // selector argument, e.g. "red" or "1-18"
	Stake     int64     `gorm:"not null" json:"stake"`
	Payout    int64     `gorm:"not null;default:0" json:"payout"`
	Outcome   int       `gorm:"not null" json:"outcome"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	SettledAt time.Time `gorm:"not null;index:idx_bet_orders_settled_at" json:"settled_at"`
}

// TableName overrides the table name
func (BetOrder) TableName() string {
	return "bet_orders"
}
