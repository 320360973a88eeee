package commands_test

import (
	"testing"

	"deliverus/internal/core/application/usecases/commands"
	"deliverus/internal/core/application/validation"
	"deliverus/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	lines := []validation.LineInput{{ProductID: 10, Quantity: 2}}

	t.Run("valid_command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(mustID(t, 1), 2, lines, "Main St 1")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, mustID(t, 1), cmd.CustomerID())
		assert.Equal(t, int64(2), cmd.RestaurantID())
		assert.Equal(t, lines, cmd.Lines())
		assert.Equal(t, "Main St 1", cmd.Address())
	})

	t.Run("invalid_customer_id", func(t *testing.T) {
		var zero kernel.ID
		_, err := commands.NewCreateOrderCommand(zero, 2, lines, "Main St 1")
		require.Error(t, err)
	})

	t.Run("empty_address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(mustID(t, 1), 2, lines, "")
		require.ErrorIs(t, err, commands.ErrAddressIsRequired)
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
