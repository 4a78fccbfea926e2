package commands_test

import (
	"testing"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(
		orderID, order.StatusShipped, kernel.RoleTransporter, "left the depot", "Nakuru")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.StatusShipped, cmd.NewStatus())
	assert.Equal(t, kernel.RoleTransporter, cmd.Actor())
	assert.Equal(t, "left the depot", cmd.Notes())
	assert.Equal(t, "Nakuru", cmd.Location())
}

func TestNewUpdateOrderStatusCommand_WithTrackingReference(t *testing.T) {
	cmd, err := commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), order.StatusShipped, kernel.RoleFarmer, "", "")
	require.NoError(t, err)

	cmd = cmd.WithTrackingReference("TRK-1", "https://track.example/TRK-1")
	assert.Equal(t, "TRK-1", cmd.TrackingNumber())
	assert.Equal(t, "https://track.example/TRK-1", cmd.TrackingURL())
	require.NoError(t, cmd.Validate())
}

func TestNewUpdateOrderStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(
		kernel.UUID{}, order.StatusShipped, kernel.RoleFarmer, "", "")
	require.Error(t, err)
}

func TestNewUpdateOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), order.StatusUnknown, kernel.RoleFarmer, "", "")
	require.Error(t, err)
}

func TestNewUpdateOrderStatusCommand_UnknownRole(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), order.StatusShipped, kernel.Role("courier"), "", "")
	require.Error(t, err)
}

func TestUpdateOrderStatusCommand_NotConstructed(t *testing.T) {
	var cmd commands.UpdateOrderStatusCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
