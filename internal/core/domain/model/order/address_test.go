package order_test

import (
	"testing"

	"farmmarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should create address with all fields", func(t *testing.T) {
		address, err := order.NewAddress("12 Market Lane", "Nakuru", "Rift Valley", "20100")

		require.NoError(t, err)
		require.NoError(t, address.Validate())
		assert.Equal(t, "12 Market Lane", address.Street())
		assert.Equal(t, "Nakuru", address.City())
		assert.Equal(t, "Rift Valley", address.Region())
		assert.Equal(t, "20100", address.PostalCode())
	})

	t.Run("should allow empty region and postal code", func(t *testing.T) {
		address, err := order.NewAddress("12 Market Lane", "Nakuru", "", "")

		require.NoError(t, err)
		assert.Empty(t, address.Region())
	})

	t.Run("should require a street", func(t *testing.T) {
		_, err := order.NewAddress("", "Nakuru", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "street")
	})

	t.Run("should require a city", func(t *testing.T) {
		_, err := order.NewAddress("12 Market Lane", "", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "city")
	})

	t.Run("should reject the zero value", func(t *testing.T) {
		var address order.Address

		assert.Error(t, address.Validate())
	})
}
