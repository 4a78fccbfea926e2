package kernel

import (
	"fmt"

	"farmmarket/internal/pkg/errs"
)

// Role is a value object identifying the kind of actor operating on an order.
// The role is resolved per request by the identity provider and is used by the
// transition authority to decide which status changes a caller may request.
//
// The zero value ("") is invalid; roles arriving from external sources must be
// parsed with RoleFromString.
type Role string

const (
	// RoleBuyer places orders and may cancel them before shipment.
	RoleBuyer Role = "buyer"

	// RoleFarmer fulfills orders and drives them through the fulfillment statuses.
	RoleFarmer Role = "farmer"

	// RoleTransporter carries orders and reports shipment progress.
	RoleTransporter Role = "transporter"

	// RoleAdmin may request any transition the state graph allows.
	RoleAdmin Role = "admin"

	// RoleGateway is the payment gateway identity used by webhook callbacks.
	// It participates in payment reconciliation only, never in fulfillment.
	RoleGateway Role = "gateway"
)

func getValidRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleBuyer:       {},
		RoleFarmer:      {},
		RoleTransporter: {},
		RoleAdmin:       {},
		RoleGateway:     {},
	}
}

// RoleFromString parses a role from its string representation.
// Returns an error for unknown roles, including the empty string.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is one of the known actor roles.
func (r Role) Validate() error {
	if _, ok := getValidRoles()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// String returns the role's string representation.
func (r Role) String() string {
	return string(r)
}
