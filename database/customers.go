package database

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/yummy-app/models"
	"github.com/yeremiapane/yummy-app/utils"
	"gorm.io/gorm"
)

func (s *Store) AddCustomer(ctx context.Context, customer models.Customer) error {
	if err := utils.ValidateStruct(customer); err != nil {
		return badParams(err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &models.Customer{}, "id = ?", customer.ID)
		if err != nil {
			return err
		}
		if found {
			return alreadyExists("customer", customer.ID)
		}
		return tx.Create(&customer).Error
	})
	if err != nil {
		return err
	}

	s.log.WithField("cust_id", customer.ID).Info("Customer added")
	return nil
}

func (s *Store) GetCustomer(ctx context.Context, customerID int) (models.Customer, error) {
	var customer models.Customer
	err := first(s.db.WithContext(ctx), &customer, "customer", customerID, "id = ?", customerID)
	return customer, err
}

// DeleteCustomer removes the customer together with their placements and
// ratings. Orders they placed remain, unplaced.
func (s *Store) DeleteCustomer(ctx context.Context, customerID int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &models.Customer{}, "id = ?", customerID)
		if err != nil {
			return err
		}
		if !found {
			return notExists("customer", customerID)
		}
		if err := tx.Where("customer_id = ?", customerID).Delete(&models.Placement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", customerID).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", customerID).Delete(&models.Customer{}).Error
	})
	if err != nil {
		return err
	}

	s.log.WithField("cust_id", customerID).Info("Customer deleted")
	return nil
}

// CustomerPlacedOrder records that the customer placed the order. An order is
// placed by at most one customer.
func (s *Store) CustomerPlacedOrder(ctx context.Context, customerID, orderID int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &models.Customer{}, "id = ?", customerID)
		if err != nil {
			return err
		}
		if !found {
			return notExists("customer", customerID)
		}
		if found, err = exists(tx, &models.Order{}, "id = ?", orderID); err != nil {
			return err
		} else if !found {
			return notExists("order", orderID)
		}
		if found, err = exists(tx, &models.Placement{}, "order_id = ?", orderID); err != nil {
			return err
		} else if found {
			return alreadyExists("placed order", orderID)
		}
		return tx.Create(&models.Placement{OrderID: orderID, CustomerID: customerID}).Error
	})
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"cust_id":  customerID,
		"order_id": orderID,
	}).Info("Order placed")
	return nil
}

func (s *Store) GetCustomerThatPlacedOrder(ctx context.Context, orderID int) (models.Customer, error) {
	var customer models.Customer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var placement models.Placement
		if err := first(tx, &placement, "placed order", orderID, "order_id = ?", orderID); err != nil {
			return err
		}
		return first(tx, &customer, "customer", placement.CustomerID, "id = ?", placement.CustomerID)
	})
	return customer, err
}
