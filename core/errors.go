package core

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("xyzsite: not found")

// BranchNotFoundError is returned by Registry.Lookup for an unknown city.
type BranchNotFoundError struct {
	City string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %q: %v", e.City, ErrNotFound)
}

func (e *BranchNotFoundError) Unwrap() error {
	return ErrNotFound
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
