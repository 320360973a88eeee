package services_test

import (
	"testing"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(t *testing.T, productID int64, quantity int, unitPrice float64) order.Line {
	t.Helper()
	id, err := kernel.NewID(productID)
	require.NoError(t, err)
	l, err := order.NewLine(id, quantity, unitPrice)
	require.NoError(t, err)
	return l
}

func TestOrderPricer_Quote(t *testing.T) {
	pricer := services.NewOrderPricer()

	t.Run("subtotal_above_threshold_ships_free", func(t *testing.T) {
		// 4x2 + 3x1 = 11 > 10
		lines := []order.Line{
			line(t, 1, 2, 4.0),
			line(t, 2, 1, 3.0),
		}

		quote := pricer.Quote(lines, 2.5)

		assert.InDelta(t, 11.0, quote.Subtotal, 0.0001)
		assert.InDelta(t, 0.0, quote.ShippingCost, 0.0001)
		assert.InDelta(t, 11.0, quote.Total, 0.0001)
	})

	t.Run("subtotal_below_threshold_adds_default_shipping", func(t *testing.T) {
		// 2x1 = 2 <= 10
		lines := []order.Line{line(t, 1, 1, 2.0)}

		quote := pricer.Quote(lines, 2.5)

		assert.InDelta(t, 2.0, quote.Subtotal, 0.0001)
		assert.InDelta(t, 2.5, quote.ShippingCost, 0.0001)
		assert.InDelta(t, 4.5, quote.Total, 0.0001)
	})

	t.Run("subtotal_exactly_at_threshold_is_charged_shipping", func(t *testing.T) {
		// 5x2 = 10, not greater than 10
		lines := []order.Line{line(t, 1, 2, 5.0)}

		quote := pricer.Quote(lines, 1.5)

		assert.InDelta(t, 10.0, quote.Subtotal, 0.0001)
		assert.InDelta(t, 1.5, quote.ShippingCost, 0.0001)
		assert.InDelta(t, 11.5, quote.Total, 0.0001)
	})

	t.Run("quantity_multiplies_unit_price", func(t *testing.T) {
		lines := []order.Line{line(t, 1, 7, 3.0)}

		quote := pricer.Quote(lines, 2.0)

		assert.InDelta(t, 21.0, quote.Subtotal, 0.0001)
		assert.InDelta(t, 0.0, quote.ShippingCost, 0.0001)
	})

	t.Run("no_lines_prices_to_shipping_only", func(t *testing.T) {
		quote := pricer.Quote(nil, 2.5)

		assert.InDelta(t, 0.0, quote.Subtotal, 0.0001)
		assert.InDelta(t, 2.5, quote.ShippingCost, 0.0001)
		assert.InDelta(t, 2.5, quote.Total, 0.0001)
	})
}
