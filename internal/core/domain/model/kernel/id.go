package kernel

import (
	"fmt"
	"strconv"

	"deliverus/internal/pkg/errs"
)

// ID is a database-assigned surrogate identifier. The store hands out positive
// integers, so zero and negative values are invalid. The zero value means
// "not assigned yet" and only appears on aggregates that have not been
// persisted; use IsZero to test for it.
type ID int64

// NewID creates a validated ID from a raw integer.
//
// Returns:
//   - the ID if value is positive
//   - error if value is zero or negative
func NewID(value int64) (ID, error) {
	id := ID(value)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate checks that the ID is a positive integer.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id is invalid",
			fmt.Errorf("%d is not greater than 0", int64(id)),
		)
	}
	return nil
}

// IsZero reports whether the ID has not been assigned yet.
func (id ID) IsZero() bool {
	return id == 0
}

// Int64 returns the raw integer value for persistence and transport.
func (id ID) Int64() int64 {
	return int64(id)
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
