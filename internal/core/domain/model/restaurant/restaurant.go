// Package restaurant contains the Restaurant entity as seen by the order
// core: the default shipping cost used by the pricing rule and the average
// service time recomputed whenever one of its orders is delivered.
package restaurant

import (
	"errors"
	"fmt"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/errs"
)

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
	// not created through the NewRestaurant factory method.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant is the order core's view of a restaurant. The full restaurant
// profile lives elsewhere; this entity carries what the order lifecycle
// needs: the default shipping cost and the recomputed average service time.
type Restaurant struct {
	// id is the unique identifier for the restaurant
	id kernel.ID

	// shippingCost is the default shipping charged below the free-shipping threshold
	shippingCost float64

	// averageServiceMinutes is the mean creation-to-delivery time over
	// delivered orders; nil until the first delivery
	averageServiceMinutes *float64

	// isConstructed ensures the restaurant was created via NewRestaurant
	isConstructed bool
}

// NewRestaurant creates a validated Restaurant instance.
func NewRestaurant(id kernel.ID, shippingCost float64, averageServiceMinutes *float64) (*Restaurant, error) {
	r := &Restaurant{
		averageServiceMinutes: averageServiceMinutes,
		isConstructed:         true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setShippingCost(shippingCost),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Restaurant instance was properly constructed through NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.ID {
	return r.id
}

// ShippingCost returns the default shipping cost.
func (r *Restaurant) ShippingCost() float64 {
	return r.shippingCost
}

// AverageServiceMinutes returns the recomputed average service time,
// nil until the restaurant has delivered its first order.
func (r *Restaurant) AverageServiceMinutes() *float64 {
	return r.averageServiceMinutes
}

// RecordServiceTime replaces the average service time after a delivery or a
// reconciliation pass recomputed it over the restaurant's delivered orders.
func (r *Restaurant) RecordServiceTime(averageMinutes float64) error {
	if averageMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"average service minutes is invalid",
			fmt.Errorf("%f is negative", averageMinutes),
		)
	}

	r.averageServiceMinutes = &averageMinutes
	return nil
}

func (r *Restaurant) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setShippingCost(shippingCost float64) error {
	if shippingCost < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipping cost is invalid",
			fmt.Errorf("%f is negative", shippingCost),
		)
	}
	r.shippingCost = shippingCost
	return nil
}
