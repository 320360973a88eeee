package services

import (
	"deliverus/internal/core/domain/model/order"
)

// FreeShippingThreshold is the subtotal above which shipping is free.
// At or below the threshold the restaurant's default shipping cost is
// charged on top of the subtotal.
const FreeShippingThreshold = 10.0

// Quote is the result of pricing an order's line set.
type Quote struct {
	// Subtotal is the sum of unit price times quantity over all lines.
	Subtotal float64

	// ShippingCost is the charge added to the subtotal; zero above the
	// free-shipping threshold.
	ShippingCost float64

	// Total is the final order price: Subtotal plus ShippingCost.
	Total float64
}

// OrderPricer is a domain service computing order totals and shipping costs.
//
// Business rules:
//   - subtotal = sum of unit price x quantity over the given lines
//   - subtotal above the free-shipping threshold ships for free
//   - otherwise the restaurant's default shipping cost is added to the total
//
// The pricer is pure: it has no side effects and prices whatever lines it is
// given, using the unit prices captured on them.
//
// Example usage:
//
//	pricer := NewOrderPricer()
//	quote := pricer.Quote(lines, restaurant.ShippingCost())
//	// quote.Total is the price to persist on the order
type OrderPricer struct{}

// NewOrderPricer creates a new OrderPricer instance.
func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Quote prices the given line set against a restaurant's default shipping cost.
//
// The whole subtotal decides the shipping charge, not any intermediate
// per-line running total.
func (OrderPricer) Quote(lines []order.Line, defaultShippingCost float64) Quote {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Subtotal()
	}

	if subtotal > FreeShippingThreshold {
		return Quote{
			Subtotal:     subtotal,
			ShippingCost: 0,
			Total:        subtotal,
		}
	}

	return Quote{
		Subtotal:     subtotal,
		ShippingCost: defaultShippingCost,
		Total:        subtotal + defaultShippingCost,
	}
}
