package queries_test

import (
	"testing"

	"deliverus/internal/core/application/usecases/queries"
	"deliverus/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomerOrdersQuery_Valid(t *testing.T) {
	customerID, err := kernel.NewID(1)
	require.NoError(t, err)

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, customerID, query.CustomerID())
}

func TestNewGetCustomerOrdersQuery_InvalidCustomerID(t *testing.T) {
	_, err := queries.NewGetCustomerOrdersQuery(kernel.ID(0))
	require.Error(t, err)
}

func TestGetCustomerOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCustomerOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCustomerOrdersQueryIsNotConstructed)
}
