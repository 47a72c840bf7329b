package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/yummy-app/models"
	"gorm.io/gorm"
)

// Store is the persistent home of customers, dishes, orders and ratings.
// Every mutating operation runs in its own transaction.
type Store struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

func NewStore(db *gorm.DB, logger logrus.FieldLogger) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Store{db: db, log: logger}
}

// DB exposes the underlying handle for components that manage their own tables.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// domainTables lists the domain tables in dependency order, parents first.
func domainTables() []interface{} {
	return []interface{}{
		&models.Customer{},
		&models.Order{},
		&models.Dish{},
		&models.Placement{},
		&models.OrderLine{},
		&models.Rating{},
	}
}

// Migrate creates the domain tables and the staff user table.
func (s *Store) Migrate(ctx context.Context) error {
	tables := append(domainTables(), &models.User{})
	if err := s.db.WithContext(ctx).AutoMigrate(tables...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	s.log.WithField("tables", len(tables)).Info("Schema migrated")
	return nil
}

// ClearTables removes every domain row but keeps the schema.
func (s *Store) ClearTables(ctx context.Context) error {
	tables := domainTables()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := len(tables) - 1; i >= 0; i-- {
			if err := tx.Where("1 = 1").Delete(tables[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to clear tables: %w", err)
	}
	s.log.Info("Domain tables cleared")
	return nil
}

// DropTables drops the domain tables.
func (s *Store) DropTables(ctx context.Context) error {
	tables := domainTables()
	for i, j := 0, len(tables)-1; i < j; i, j = i+1, j-1 {
		tables[i], tables[j] = tables[j], tables[i]
	}
	if err := s.db.WithContext(ctx).Migrator().DropTable(tables...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	s.log.Info("Domain tables dropped")
	return nil
}

func exists(tx *gorm.DB, model interface{}, query string, args ...interface{}) (bool, error) {
	var count int64
	if err := tx.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// first loads one row into dest, mapping a missing row to ErrNotExists.
func first(tx *gorm.DB, dest interface{}, entity string, id int, query string, args ...interface{}) error {
	result := tx.Where(query, args...).Limit(1).Find(dest)
	if result.Error != nil {
		return fmt.Errorf("failed to load %s: %w", entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return notExists(entity, id)
	}
	return nil
}
