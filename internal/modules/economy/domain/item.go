package domain

import "github.com/shopspring/decimal"

// Effect is what a shop item changes
type Effect string

const (
	EffectSavingsRate    Effect = "savings_rate"
	EffectWorkMultiplier Effect = "work_multiplier"
)

// Item is a permanent upgrade sold in the shop
type Item struct {
	Name        string
	Price       int64
	Description string
	Effect      Effect
	Value       decimal.Decimal
}
