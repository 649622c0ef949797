package db

import (
	"context"

	"github.com/frankieli/roulette/internal/modules/roulette/domain"
	"gorm.io/gorm"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// AutoMigrate creates the history tables
func (r *HistoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.BetOrder{}, &domain.SpinRecord{})
}

func (r *HistoryRepository) BatchCreateOrders(ctx context.Context, orders []*domain.BetOrder) error {
	if len(orders) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&orders).Error
}

func (r *HistoryRepository) CreateSpin(ctx context.Context, spin *domain.SpinRecord) error {
	return r.db.WithContext(ctx).Create(spin).Error
}

func (r *HistoryRepository) RecentSpins(ctx context.Context, limit int) ([]*domain.SpinRecord, error) {
	var spins []*domain.SpinRecord
	err := r.db.WithContext(ctx).
		Order("spun_at DESC").
		Limit(limit).
		Find(&spins).Error
	return spins, err
}
