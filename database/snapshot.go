package database

import (
	"context"
	"fmt"

	"github.com/yeremiapane/yummy-app/analytics"
	"gorm.io/gorm"
)

// Snapshot reads every domain table inside one transaction, so the analytics
// engine sees a single consistent state.
func (s *Store) Snapshot(ctx context.Context) (*analytics.Snapshot, error) {
	snap := &analytics.Snapshot{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("id ASC").Find(&snap.Customers).Error; err != nil {
			return err
		}
		if err := tx.Order("id ASC").Find(&snap.Dishes).Error; err != nil {
			return err
		}
		if err := tx.Order("id ASC").Find(&snap.Orders).Error; err != nil {
			return err
		}
		if err := tx.Order("order_id ASC").Find(&snap.Placements).Error; err != nil {
			return err
		}
		if err := tx.Order("order_id ASC, dish_id ASC").Find(&snap.OrderLines).Error; err != nil {
			return err
		}
		return tx.Order("customer_id ASC, dish_id ASC").Find(&snap.Ratings).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return snap, nil
}
