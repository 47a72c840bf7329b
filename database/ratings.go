package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/yummy-app/models"
	"github.com/yeremiapane/yummy-app/utils"
	"gorm.io/gorm"
)

// CustomerRatedDish stores a rating in [1, 5]. Inactive dishes can be rated.
func (s *Store) CustomerRatedDish(ctx context.Context, customerID, dishID, score int) error {
	rating := models.Rating{CustomerID: customerID, DishID: dishID, Score: score}
	if err := utils.ValidateStruct(rating); err != nil {
		return badParams(err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &models.Customer{}, "id = ?", customerID)
		if err != nil {
			return err
		}
		if !found {
			return notExists("customer", customerID)
		}
		if found, err = exists(tx, &models.Dish{}, "id = ?", dishID); err != nil {
			return err
		} else if !found {
			return notExists("dish", dishID)
		}
		if found, err = exists(tx, &models.Rating{}, "customer_id = ? AND dish_id = ?", customerID, dishID); err != nil {
			return err
		} else if found {
			return alreadyExists("rating on dish", dishID)
		}
		return tx.Create(&rating).Error
	})
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"cust_id": customerID,
		"dish_id": dishID,
		"rating":  score,
	}).Info("Dish rated")
	return nil
}

func (s *Store) CustomerDeletedRatingOnDish(ctx context.Context, customerID, dishID int) error {
	result := s.db.WithContext(ctx).
		Where("customer_id = ? AND dish_id = ?", customerID, dishID).
		Delete(&models.Rating{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete rating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notExists("rating on dish", dishID)
	}
	return nil
}

// GetAllCustomerRatings lists a customer's ratings ascending by dish id.
func (s *Store) GetAllCustomerRatings(ctx context.Context, customerID int) ([]models.Rating, error) {
	ratings := make([]models.Rating, 0)
	if err := s.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("dish_id ASC").Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}
	return ratings, nil
}
