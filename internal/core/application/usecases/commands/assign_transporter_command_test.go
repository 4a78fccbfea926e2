package commands_test

import (
	"testing"
	"time"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignTransporterCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	transporterID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	eta := time.Now().UTC().Add(24 * time.Hour)

	cmd, err := commands.NewAssignTransporterCommand(
		orderID, transporterID, &vehicleID, eta, kernel.RoleFarmer)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, transporterID, cmd.TransporterID())
	require.NotNil(t, cmd.VehicleID())
	assert.True(t, cmd.VehicleID().IsEqual(vehicleID))
	assert.Equal(t, eta, cmd.EstimatedDelivery())
}

func TestNewAssignTransporterCommand_NoVehicle(t *testing.T) {
	cmd, err := commands.NewAssignTransporterCommand(
		kernel.NewUUID(), kernel.NewUUID(), nil, time.Now().UTC().Add(time.Hour), kernel.RoleAdmin)
	require.NoError(t, err)
	assert.Nil(t, cmd.VehicleID())
}

func TestNewAssignTransporterCommand_ZeroEstimatedDelivery(t *testing.T) {
	_, err := commands.NewAssignTransporterCommand(
		kernel.NewUUID(), kernel.NewUUID(), nil, time.Time{}, kernel.RoleFarmer)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewAssignTransporterCommand_BuyerRoleRejected(t *testing.T) {
	_, err := commands.NewAssignTransporterCommand(
		kernel.NewUUID(), kernel.NewUUID(), nil, time.Now().UTC().Add(time.Hour), kernel.RoleBuyer)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorizedRole)
}

func TestNewAssignTransporterCommand_TransporterRoleRejected(t *testing.T) {
	_, err := commands.NewAssignTransporterCommand(
		kernel.NewUUID(), kernel.NewUUID(), nil, time.Now().UTC().Add(time.Hour), kernel.RoleTransporter)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorizedRole)
}
