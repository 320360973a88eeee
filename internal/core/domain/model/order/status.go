package order

import (
	"fmt"

	"deliverus/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Started ──> Sent ──> Delivered
//
// The path is strictly linear: there is no branching and no cancellation
// once an order has been started. While an order is Pending the customer
// may still edit or delete it; every later state belongs to the owner.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// The order has not been confirmed by the restaurant owner yet,
	// so the customer can still edit or delete it.
	Pending

	// Started indicates the restaurant owner confirmed the order
	// and the kitchen is working on it.
	Started

	// Sent indicates the order has been dispatched for delivery.
	Sent

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Started:   "started",
		Sent:      "sent",
		Delivered: "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Started:   "started",
		Sent:      "sent",
		Delivered: "delivered",
	}
}

// ParseStatus converts the public status vocabulary used by list filters into
// a Status value. "in process" is the public name of the Started state.
func ParseStatus(value string) (Status, error) {
	switch value {
	case "pending":
		return Pending, nil
	case "in process":
		return Started, nil
	case "sent":
		return Sent, nil
	case "delivered":
		return Delivered, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%q is not a known status", value),
		)
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Started, Sent, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsEditable reports whether customer-side modification (edit or delete)
// is still allowed. Only Pending orders can be modified.
func (s Status) IsEditable() bool {
	return s == Pending
}

// Confirm transitions the status to Started.
//
// Valid transitions:
//   - Pending -> Started
//
// Repeating Confirm on an already started order is rejected.
//
// Returns:
//   - (Started, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}

	return Started, nil
}

// Send transitions the status to Sent.
//
// Valid transitions:
//   - Started -> Sent
//
// Orders that were never confirmed, or that have already been sent,
// are rejected.
func (s Status) Send() (Status, error) {
	if s != Started {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to send", s.String()),
		)
	}

	return Sent, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Sent -> Delivered
//
// Delivered is a final state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s != Sent {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}

// ValidateTimestamps validates the consistency between the status and the
// presence of the three lifecycle timestamps. Each timestamp is set exactly
// once by its transition and never unset, so the flags must follow the
// status: sent implies started, delivered implies sent.
//
// Parameters:
//   - started, sent, delivered: whether the corresponding timestamp is set
//
// Returns:
//   - error: validation error if the timestamps do not match the status
func (s Status) ValidateTimestamps(started, sent, delivered bool) error {
	expected := map[Status][3]bool{
		Pending:   {false, false, false},
		Started:   {true, false, false},
		Sent:      {true, true, false},
		Delivered: {true, true, true},
	}

	want, ok := expected[s]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}

	if want != [3]bool{started, sent, delivered} {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("timestamps do not match status %s", s.String()),
		)
	}

	return nil
}
