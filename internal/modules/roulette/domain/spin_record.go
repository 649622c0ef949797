package domain

import "time"

// SpinRecord is the history row written once per spin
type SpinRecord struct {
	RoundID     string    `gorm:"primaryKey;type:varchar(64)" json:"round_id"`
	Outcome     int       `gorm:"not null" json:"outcome"`
	Color       string    `gorm:"type:varchar(8);not null" json:"color"`
	TotalBets   int       `gorm:"not null;default:0" json:"total_bets"`
	TotalStake  int64     `gorm:"not null;default:0" json:"total_stake"`
	TotalReturn int64     `gorm:"not null;default:0" json:"total_return"`
	SpunAt      time.Time `gorm:"not null;index:idx_spin_records_spun_at" json:"spun_at"`
}

// TableName overrides the table name
func (SpinRecord) TableName() string {
	return "spin_records"
}
