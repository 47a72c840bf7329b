package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/yummy-app/models"
	"github.com/yeremiapane/yummy-app/utils"
	"gorm.io/gorm"
)

func (s *Store) AddDish(ctx context.Context, dish models.Dish) error {
	if err := utils.ValidateStruct(dish); err != nil {
		return badParams(err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &models.Dish{}, "id = ?", dish.ID)
		if err != nil {
			return err
		}
		if found {
			return alreadyExists("dish", dish.ID)
		}
		return tx.Create(&dish).Error
	})
	if err != nil {
		return err
	}

	s.log.WithField("dish_id", dish.ID).Info("Dish added")
	return nil
}

func (s *Store) GetDish(ctx context.Context, dishID int) (models.Dish, error) {
	var dish models.Dish
	err := first(s.db.WithContext(ctx), &dish, "dish", dishID, "id = ?", dishID)
	return dish, err
}

// UpdateDishPrice changes the current price of an active dish. Existing order
// lines keep the price they were created with.
func (s *Store) UpdateDishPrice(ctx context.Context, dishID int, price float64) error {
	if price <= 0 {
		return badParams(fmt.Errorf("price must be positive, got %v", price))
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &models.Dish{}, "id = ? AND is_active = ?", dishID, true)
		if err != nil {
			return err
		}
		if !found {
			return notExists("active dish", dishID)
		}
		return tx.Model(&models.Dish{}).Where("id = ?", dishID).Update("price", price).Error
	})
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"dish_id": dishID,
		"price":   price,
	}).Info("Dish price updated")
	return nil
}

func (s *Store) UpdateDishActiveStatus(ctx context.Context, dishID int, isActive bool) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &models.Dish{}, "id = ?", dishID)
		if err != nil {
			return err
		}
		if !found {
			return notExists("dish", dishID)
		}
		return tx.Model(&models.Dish{}).Where("id = ?", dishID).Update("is_active", isActive).Error
	})
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"dish_id":   dishID,
		"is_active": isActive,
	}).Info("Dish status updated")
	return nil
}
