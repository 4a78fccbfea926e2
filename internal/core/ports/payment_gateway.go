package ports

import (
	"context"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
)

// ChargeRequest is the outbound payment request for an order.
type ChargeRequest struct {
	OrderID     kernel.UUID
	OrderNumber string
	Amount      kernel.Money
	Method      order.PaymentMethod
	// Details carries method-specific fields (card token, wallet reference)
	// passed through to the gateway untouched.
	Details map[string]string
}

// ChargeResult is the gateway's synchronous answer to a charge request.
// The final state may still arrive later through the webhook.
type ChargeResult struct {
	PaymentID string
	Status    order.PaymentStatus
}

// PaymentGateway is the outbound payment collaborator. Implementations must
// bound every call with a timeout and surface failures as
// UpstreamUnavailableError; the order's fulfillment status is left unchanged
// on timeout so the request is safely retryable.
type PaymentGateway interface {
	// Charge submits a payment request for the order's total amount.
	Charge(ctx context.Context, request ChargeRequest) (ChargeResult, error)

	// PaymentStatus queries the gateway for the current state of a
	// previously submitted payment. Used by the reconciliation job.
	PaymentStatus(ctx context.Context, paymentID string) (order.PaymentStatus, error)
}
