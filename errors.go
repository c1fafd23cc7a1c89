package popover

import (
	"errors"
	"fmt"
)

var (
	// ErrOutsidePopover is the cause of every UsageError.
	ErrOutsidePopover = errors.New("popover: used outside of a Popover")

	// ErrUnknownPlacement is returned by ParsePlacement for unknown names.
	ErrUnknownPlacement = errors.New("popover: unknown placement")
)

// UsageError is the panic value raised when a sub-part is rendered with no
// enclosing Popover.
type UsageError struct {
	Op string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("popover: %s must be rendered inside a Popover", e.Op)
}

func (e *UsageError) Unwrap() error {
	return ErrOutsidePopover
}
