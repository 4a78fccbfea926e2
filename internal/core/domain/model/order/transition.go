package order

import (
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
)

// TransitionAuthority decides whether a requested fulfillment status change is
// legal for a given caller role and current order state. It is a pure decision
// component: deterministic, side-effect-free, and safe for concurrent use.
//
// The decision has two layers. The base state graph (Status.CanTransitionTo)
// encodes physical reality and rejects impossible moves regardless of role.
// The role filter, applied only to edges the graph allows, encodes
// organizational policy and can evolve without touching the graph. The two
// layers fail with distinguishable error kinds (ErrInvalidTransition and
// ErrUnauthorizedRole) because they imply different client remediation:
// wrong order state vs. wrong actor.
//
// Example:
//
//	authority := order.NewTransitionAuthority()
//	if err := authority.Decide(order.StatusShipped, order.StatusCancelled, kernel.RoleBuyer); err != nil {
//	    // errors.Is(err, errs.ErrUnauthorizedRole): buyers cannot cancel shipped orders
//	}
type TransitionAuthority struct{}

// NewTransitionAuthority creates a transition authority.
func NewTransitionAuthority() TransitionAuthority {
	return TransitionAuthority{}
}

// roleTargets returns the statuses each role is allowed to request.
// The result is intersected with the base graph; listing a status here never
// grants an edge the graph does not have.
func roleTargets() map[kernel.Role][]Status {
	return map[kernel.Role][]Status{
		kernel.RoleBuyer:       {StatusCancelled},
		kernel.RoleFarmer:      {StatusConfirmed, StatusProcessing, StatusShipped, StatusInTransit, StatusDelivered, StatusCancelled},
		kernel.RoleTransporter: {StatusShipped, StatusInTransit, StatusDelivered},
		kernel.RoleAdmin: {
			StatusConfirmed, StatusProcessing, StatusShipped,
			StatusInTransit, StatusDelivered, StatusCancelled,
		},
	}
}

// buyerCancellableFrom lists the statuses a buyer may still cancel from.
// Once an order is shipped the buyer loses the cancellation right.
func buyerCancellableFrom() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:    {},
		StatusConfirmed:  {},
		StatusProcessing: {},
	}
}

// Decide validates a requested transition against both layers.
//
// Returns:
//   - nil if the transition is permitted
//   - AlreadyFinalizedError if the current status is terminal
//   - InvalidTransitionError if the base graph has no such edge
//   - UnauthorizedRoleError if the edge exists but the role may not use it
func (TransitionAuthority) Decide(current, requested Status, role kernel.Role) error {
	if err := current.Validate(); err != nil {
		return err
	}
	if err := requested.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}

	if current.IsTerminal() {
		return errs.NewAlreadyFinalizedError(current.String())
	}
	if !current.CanTransitionTo(requested) {
		return errs.NewInvalidTransitionError(current.String(), requested.String())
	}

	if !roleMayRequest(role, current, requested) {
		return errs.NewUnauthorizedRoleError(role.String(),
			fmt.Sprintf("transition %s -> %s", current, requested))
	}

	return nil
}

// PermittedNext returns the set of statuses the role may move the order into
// from the current status: the intersection of the base-graph edges and the
// role's allowlist.
func (a TransitionAuthority) PermittedNext(current Status, role kernel.Role) []Status {
	permitted := make([]Status, 0)
	for _, next := range current.NextStatuses() {
		if a.Decide(current, next, role) == nil {
			permitted = append(permitted, next)
		}
	}
	return permitted
}

func roleMayRequest(role kernel.Role, current, requested Status) bool {
	if role == kernel.RoleBuyer {
		if requested != StatusCancelled {
			return false
		}
		_, ok := buyerCancellableFrom()[current]
		return ok
	}

	for _, target := range roleTargets()[role] {
		if target == requested {
			return true
		}
	}
	return false
}
