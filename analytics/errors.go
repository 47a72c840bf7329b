package analytics

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks a malformed request, as opposed to "nothing matched".
var ErrInvalidArgument = errors.New("invalid argument")

func requirePositive(name string, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidArgument, name, id)
	}
	return nil
}
