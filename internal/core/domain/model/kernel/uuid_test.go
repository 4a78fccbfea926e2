package kernel_test

import (
	"testing"

	"farmmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should parse canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should return error for malformed input", func(t *testing.T) {
		for _, input := range []string{
			"",
			"not-a-uuid",
			"550e8400-e29b-41d4-a716",
			"550e8400-e29b-41d4-a716-44665544000g",
		} {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, "expected error for input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should create UUID from 16 bytes", func(t *testing.T) {
		source := kernel.NewUUID()
		raw := source.Bytes()

		id, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, id.IsEqual(source))
	})

	t.Run("should return error for wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x55, 0x0e, 0x84})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should return error for all-zero bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("should round-trip through the underlying value", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		assert.IsType(t, uuid.UUID{}, raw)
		assert.Equal(t, id.String(), raw.String())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("should return true for the same value", func(t *testing.T) {
		id1, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
		require.NoError(t, err)
		id2, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
		require.NoError(t, err)

		assert.True(t, id1.IsEqual(id2))
	})

	t.Run("should return false for different values", func(t *testing.T) {
		assert.False(t, kernel.NewUUID().IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("should return nil for constructed UUID", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("should return error for zero value", func(t *testing.T) {
		var id kernel.UUID

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("should return error for the nil UUID string", func(t *testing.T) {
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}
