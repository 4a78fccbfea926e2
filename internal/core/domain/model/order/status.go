package order

import (
	"fmt"

	"farmmarket/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct physical workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Shipped ──> InTransit ──> Delivered
//	   │            │             │             │            │
//	   └────────────┴─────────────┴─────────────┴────────────┴──> Cancelled
//
// Delivered, Cancelled, and Refunded are terminal: no further fulfillment
// transitions are allowed out of them. The graph encodes physical reality
// (an order cannot be un-shipped); which actor may use a given edge is a
// separate policy decided by the TransitionAuthority.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is first created.
	StatusPending

	// StatusConfirmed indicates the farmer accepted the order.
	StatusConfirmed

	// StatusProcessing indicates the farmer is preparing the order.
	StatusProcessing

	// StatusShipped indicates the order left the farm.
	StatusShipped

	// StatusInTransit indicates the transporter is carrying the order.
	StatusInTransit

	// StatusDelivered indicates the order reached the buyer. Terminal.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before delivery. Terminal.
	StatusCancelled

	// StatusRefunded indicates a finished order whose payment was returned. Terminal.
	StatusRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusConfirmed:  "confirmed",
		StatusProcessing: "processing",
		StatusShipped:    "shipped",
		StatusInTransit:  "in_transit",
		StatusDelivered:  "delivered",
		StatusCancelled:  "cancelled",
		StatusRefunded:   "refunded",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "pending",
		StatusConfirmed:  "confirmed",
		StatusProcessing: "processing",
		StatusShipped:    "shipped",
		StatusInTransit:  "in_transit",
		StatusDelivered:  "delivered",
		StatusCancelled:  "cancelled",
		StatusRefunded:   "refunded",
	}
}

// baseGraph is the role-agnostic edge set of the fulfillment state machine.
// A transition absent from this map is rejected regardless of who requests it.
func baseGraph() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:    {StatusConfirmed, StatusCancelled},
		StatusConfirmed:  {StatusProcessing, StatusCancelled},
		StatusProcessing: {StatusShipped, StatusCancelled},
		StatusShipped:    {StatusInTransit, StatusCancelled},
		StatusInTransit:  {StatusDelivered, StatusCancelled},
	}
}

// StatusFromString parses a status from its wire representation (e.g. "in_transit").
// Returns an error for unknown values, including "unknown" itself.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further fulfillment transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusRefunded
}

// CanTransitionTo reports whether the base state graph contains an edge from
// s to next. This is the role-agnostic layer: an edge the graph permits may
// still be denied to a particular role by the TransitionAuthority.
func (s Status) CanTransitionTo(next Status) bool {
	for _, candidate := range baseGraph()[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from s in the base graph.
// Terminal statuses return an empty slice.
func (s Status) NextStatuses() []Status {
	return baseGraph()[s]
}
