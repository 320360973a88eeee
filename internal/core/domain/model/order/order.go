package order

import (
	"errors"
	"fmt"
	"time"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already has a persistent identity.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")

	// ErrAddressIsRequired is returned when an order is created or edited
	// without a delivery address.
	ErrAddressIsRequired = errors.New("address is required")

	// ErrOrderHasNoLines is returned when an order is created or edited with
	// an empty line set.
	ErrOrderHasNoLines = errors.New("order must contain at least one line")
)

// Order represents a customer's order against a single restaurant. It is the
// aggregate root that manages the order lifecycle from creation through
// confirmation, dispatch and delivery.
//
// Order follows these invariants:
//   - Must reference a valid customer and restaurant
//   - Must carry at least one validated line; the restaurant is immutable
//   - Price and shipping cost are computed by the pricing rule, never stored raw input
//   - Lifecycle timestamps are set exactly once and never unset:
//     sentAt implies startedAt, deliveredAt implies sentAt
//   - Status transitions follow the linear pending -> started -> sent -> delivered path
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the database-assigned identifier (zero until persisted)
	id kernel.ID

	// customerID references the customer who placed the order
	customerID kernel.ID

	// restaurantID references the restaurant the order was placed with
	restaurantID kernel.ID

	// address is the delivery destination
	address string

	// price is the computed order total, shipping included when charged
	price float64

	// shippingCost is the computed shipping charge (zero above the free-shipping threshold)
	shippingCost float64

	// status is the current state in the order lifecycle
	status Status

	// createdAt is set on creation and never changes
	createdAt time.Time

	// startedAt, sentAt and deliveredAt are stamped by their transitions, once each
	startedAt   *time.Time
	sentAt      *time.Time
	deliveredAt *time.Time

	// lines are the ordered products with quantities and captured unit prices
	lines []Line

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new pending Order. This is the entry point for customer
// order placement; the identifier stays zero until the store assigns one.
//
// Parameters:
//   - customerID: the owning customer (must be valid)
//   - restaurantID: the restaurant the order targets (must be valid)
//   - address: delivery destination (must not be empty)
//   - lines: ordered products (must be non-empty, each validated)
//   - price, shippingCost: result of the pricing rule (must not be negative)
//   - createdAt: creation timestamp
//
// The order starts in Pending status with all lifecycle timestamps unset.
func NewOrder(
	customerID kernel.ID,
	restaurantID kernel.ID,
	address string,
	lines []Line,
	price float64,
	shippingCost float64,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setAddress(address),
		order.setLines(lines),
		order.setPricing(price, shippingCost),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. It validates the
// status against the lifecycle timestamps so inconsistent rows are rejected
// instead of resurfacing as impossible states.
func RestoreOrder(
	id kernel.ID,
	customerID kernel.ID,
	restaurantID kernel.ID,
	address string,
	lines []Line,
	price float64,
	shippingCost float64,
	status Status,
	createdAt time.Time,
	startedAt *time.Time,
	sentAt *time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateTimestamps(startedAt != nil, sentAt != nil, deliveredAt != nil); err != nil {
		return nil, err
	}

	order, err := NewOrder(customerID, restaurantID, address, lines, price, shippingCost, createdAt)
	if err != nil {
		return nil, err
	}

	order.id = id
	order.status = status
	order.startedAt = startedAt
	order.sentAt = sentAt
	order.deliveredAt = deliveredAt
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && !o.id.IsZero() && o.id == other.id
}

// ID returns the order's identifier. Zero until the order is persisted.
func (o *Order) ID() kernel.ID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// RestaurantID returns the restaurant's identifier. Immutable after creation.
func (o *Order) RestaurantID() kernel.ID {
	return o.restaurantID
}

// Address returns the delivery destination.
func (o *Order) Address() string {
	return o.address
}

// Price returns the computed order total.
func (o *Order) Price() float64 {
	return o.price
}

// ShippingCost returns the computed shipping charge.
func (o *Order) ShippingCost() float64 {
	return o.shippingCost
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StartedAt returns the confirmation timestamp, nil while pending.
func (o *Order) StartedAt() *time.Time {
	return o.startedAt
}

// SentAt returns the dispatch timestamp, nil until sent.
func (o *Order) SentAt() *time.Time {
	return o.sentAt
}

// DeliveredAt returns the delivery timestamp, nil until delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Lines returns the ordered product lines.
func (o *Order) Lines() []Line {
	return o.lines
}

// AssignID gives the order its persistent identity after the store inserted it.
// The identity can only be assigned once.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !o.id.IsZero() {
		return ErrOrderIDAlreadyAssigned
	}

	o.id = id
	return nil
}

// Replace swaps the complete line set, address and computed pricing of a
// pending order. Editing is a full replacement, not an incremental change:
// the previous lines are discarded entirely.
//
// Returns an error if the order has already been started.
func (o *Order) Replace(lines []Line, address string, price float64, shippingCost float64) error {
	if !o.status.IsEditable() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to edit", o.status.String()),
		)
	}

	return errors.Join(
		o.setAddress(address),
		o.setLines(lines),
		o.setPricing(price, shippingCost),
	)
}

// Confirm marks the order as started by the restaurant owner.
//
// Valid only while Pending; repeating Confirm on a started order fails.
// Stamps startedAt with the supplied time.
func (o *Order) Confirm(now time.Time) error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.startedAt = &now
	return nil
}

// Send marks the order as dispatched.
//
// Valid only while Started. Stamps sentAt with the supplied time.
func (o *Order) Send(now time.Time) error {
	newStatus, err := o.status.Send()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.sentAt = &now
	return nil
}

// Deliver marks the order as delivered, the terminal state.
//
// Valid only while Sent. Stamps deliveredAt with the supplied time.
func (o *Order) Deliver(now time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// ServiceMinutes returns the minutes between creation and delivery.
// Only meaningful for delivered orders; returns zero otherwise.
func (o *Order) ServiceMinutes() float64 {
	if o.deliveredAt == nil {
		return 0
	}
	return o.deliveredAt.Sub(o.createdAt).Minutes()
}

func (o *Order) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = lines
	return nil
}

func (o *Order) setPricing(price float64, shippingCost float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%f is negative", price),
		)
	}
	if shippingCost < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipping cost is invalid",
			fmt.Errorf("%f is negative", shippingCost),
		)
	}

	o.price = price
	o.shippingCost = shippingCost
	return nil
}
