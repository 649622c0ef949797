package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Profile is the player's permanent economic state: rates, upgrades, donations
type Profile struct {
	SavingsRate    decimal.Decimal // fraction credited per prompt tick
	WorkMultiplier decimal.Decimal
	Owned          map[string]struct{}
	CharityTotal   int64
}

// NewProfile creates a profile with no upgrades
func NewProfile(savingsRate decimal.Decimal) *Profile {
	return &Profile{
		SavingsRate:    savingsRate,
		WorkMultiplier: decimal.NewFromInt(1),
		Owned:          make(map[string]struct{}),
	}
}

// Owns checks whether an item was already bought
func (p *Profile) Owns(name string) bool {
	_, ok := p.Owned[name]
	return ok
}

// OwnedItems returns owned item names sorted
func (p *Profile) OwnedItems() []string {
	names := make([]string, 0, len(p.Owned))
	for name := range p.Owned {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply records the purchase and its permanent effect
func (p *Profile) Apply(item Item) {
	p.Owned[item.Name] = struct{}{}

	switch item.Effect {
	case EffectSavingsRate:
		p.SavingsRate = p.SavingsRate.Add(item.Value)
	case EffectWorkMultiplier:
		p.WorkMultiplier = p.WorkMultiplier.Add(item.Value)
	}
}

// Interest is floor(savings * rate)
func (p *Profile) Interest(savings int64) int64 {
	if savings <= 0 {
		return 0
	}
	return decimal.NewFromInt(savings).Mul(p.SavingsRate).Floor().IntPart()
}

// RatePercent renders the savings rate, e.g. "1.50%"
func (p *Profile) RatePercent() string {
	return p.SavingsRate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
