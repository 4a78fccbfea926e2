package commands

import (
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrAssignTransporterCommandIsNotConstructed = errors.New(
		"AssignTransporterCommand must be created via NewAssignTransporterCommand constructor",
	)
)

// AssignTransporterCommand represents a request to assign a transporter
// (and optionally a vehicle) to an order and set its estimated delivery time.
// Only farmers and admins may assign transport; the aggregate additionally
// requires the order to be confirmed or processing.
type AssignTransporterCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	transporterID     kernel.UUID
	vehicleID         *kernel.UUID
	estimatedDelivery time.Time
	actor             kernel.Role

	guard guard.ConstructorGuard
}

// NewAssignTransporterCommand creates a command to assign a transporter.
// Validates identifiers, requires a non-zero estimated delivery time, and
// requires the actor to be a farmer or an admin.
func NewAssignTransporterCommand(
	orderID kernel.UUID,
	transporterID kernel.UUID,
	vehicleID *kernel.UUID,
	estimatedDelivery time.Time,
	actor kernel.Role,
) (AssignTransporterCommand, error) {
	cmd := AssignTransporterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTransporterID(transporterID),
		cmd.setVehicleID(vehicleID),
		cmd.setEstimatedDelivery(estimatedDelivery),
		cmd.setActor(actor),
	); err != nil {
		return AssignTransporterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTransporterCommand) Validate() error {
	return c.guard.Validate(ErrAssignTransporterCommandIsNotConstructed)
}

// OrderID returns the order to assign transport to.
func (c AssignTransporterCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TransporterID returns the transporter being assigned.
func (c AssignTransporterCommand) TransporterID() kernel.UUID {
	return c.transporterID
}

// VehicleID returns the vehicle being assigned, or nil.
func (c AssignTransporterCommand) VehicleID() *kernel.UUID {
	return c.vehicleID
}

// EstimatedDelivery returns the new estimated delivery time.
func (c AssignTransporterCommand) EstimatedDelivery() time.Time {
	return c.estimatedDelivery
}

// Actor returns the role of the caller.
func (c AssignTransporterCommand) Actor() kernel.Role {
	return c.actor
}

func (c *AssignTransporterCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignTransporterCommand) setTransporterID(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}
	c.transporterID = transporterID
	return nil
}

func (c *AssignTransporterCommand) setVehicleID(vehicleID *kernel.UUID) error {
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return err
		}
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *AssignTransporterCommand) setEstimatedDelivery(estimatedDelivery time.Time) error {
	if estimatedDelivery.IsZero() {
		return errs.NewValueIsRequiredError("estimated delivery")
	}
	c.estimatedDelivery = estimatedDelivery
	return nil
}

func (c *AssignTransporterCommand) setActor(actor kernel.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor != kernel.RoleFarmer && actor != kernel.RoleAdmin {
		return errs.NewUnauthorizedRoleError(actor.String(), "assign transporter")
	}
	c.actor = actor
	return nil
}
