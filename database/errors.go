package database

import (
	"errors"
	"fmt"
)

var (
	// ErrBadParams reports input that violates an entity constraint.
	ErrBadParams = errors.New("bad params")
	// ErrNotExists reports a missing row, or a referenced row that is missing.
	ErrNotExists = errors.New("not exists")
	// ErrAlreadyExists reports a duplicate key or an already placed order.
	ErrAlreadyExists = errors.New("already exists")
)

func badParams(err error) error {
	return fmt.Errorf("%w: %v", ErrBadParams, err)
}

func notExists(entity string, id int) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotExists)
}

func alreadyExists(entity string, id int) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrAlreadyExists)
}
