package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/yummy-app/models"
	"github.com/yeremiapane/yummy-app/utils"
	"gorm.io/gorm"
)

// AddOrder stores a new order. Dates are kept at second precision.
func (s *Store) AddOrder(ctx context.Context, order models.Order) error {
	if err := utils.ValidateStruct(order); err != nil {
		return badParams(err)
	}
	order.Date = order.Date.Truncate(time.Second)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &models.Order{}, "id = ?", order.ID)
		if err != nil {
			return err
		}
		if found {
			return alreadyExists("order", order.ID)
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return err
	}

	s.log.WithField("order_id", order.ID).Info("Order added")
	return nil
}

func (s *Store) GetOrder(ctx context.Context, orderID int) (models.Order, error) {
	var order models.Order
	err := first(s.db.WithContext(ctx), &order, "order", orderID, "id = ?", orderID)
	return order, err
}

// DeleteOrder removes the order with its placement and lines.
func (s *Store) DeleteOrder(ctx context.Context, orderID int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &models.Order{}, "id = ?", orderID)
		if err != nil {
			return err
		}
		if !found {
			return notExists("order", orderID)
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&models.Placement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", orderID).Delete(&models.Order{}).Error
	})
	if err != nil {
		return err
	}

	s.log.WithField("order_id", orderID).Info("Order deleted")
	return nil
}

// OrderContainsDish adds amount units of an active dish to the order at the
// dish's current price.
func (s *Store) OrderContainsDish(ctx context.Context, orderID, dishID, amount int) error {
	if amount <= 0 {
		return badParams(fmt.Errorf("amount must be positive, got %d", amount))
	}

	var line models.OrderLine
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &models.Order{}, "id = ?", orderID)
		if err != nil {
			return err
		}
		if !found {
			return notExists("order", orderID)
		}

		var dish models.Dish
		if err := first(tx, &dish, "active dish", dishID, "id = ? AND is_active = ?", dishID, true); err != nil {
			return err
		}

		if found, err = exists(tx, &models.OrderLine{}, "order_id = ? AND dish_id = ?", orderID, dishID); err != nil {
			return err
		} else if found {
			return alreadyExists("dish in order", dishID)
		}

		line = models.OrderLine{OrderID: orderID, DishID: dishID, Amount: amount, Price: dish.Price}
		return tx.Create(&line).Error
	})
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"order_id": orderID,
		"dish_id":  dishID,
		"amount":   amount,
		"price":    line.Price,
	}).Info("Dish added to order")
	return nil
}

func (s *Store) OrderDoesNotContainDish(ctx context.Context, orderID, dishID int) error {
	result := s.db.WithContext(ctx).
		Where("order_id = ? AND dish_id = ?", orderID, dishID).
		Delete(&models.OrderLine{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove dish from order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notExists("dish in order", dishID)
	}

	s.log.WithFields(logrus.Fields{
		"order_id": orderID,
		"dish_id":  dishID,
	}).Info("Dish removed from order")
	return nil
}

// GetAllOrderItems lists the lines of an order ascending by dish id. Unknown
// orders yield an empty list.
func (s *Store) GetAllOrderItems(ctx context.Context, orderID int) ([]models.OrderLine, error) {
	lines := make([]models.OrderLine, 0)
	if err := s.db.WithContext(ctx).Where("order_id = ?", orderID).Order("dish_id ASC").Find(&lines).Error; err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}
	return lines, nil
}
