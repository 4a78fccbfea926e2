package order

import (
	"fmt"

	"farmmarket/internal/pkg/errs"
)

// PaymentStatus represents the money-received axis of an order. It is
// independent of the fulfillment Status: an order can be pending fulfillment
// but already paid, or delivered with payment still pending (cash on delivery).
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means no money has been received yet.
	PaymentPending

	// PaymentPaid means the gateway confirmed the charge.
	PaymentPaid

	// PaymentFailed means the charge was attempted and rejected.
	PaymentFailed

	// PaymentRefunded means a received payment was returned to the buyer.
	PaymentRefunded
)

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentFailed:   "failed",
		PaymentRefunded: "refunded",
	}
}

// PaymentStatusFromString parses a payment status from its wire representation.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire representation of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getValidPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// PaymentMethod is how the buyer chose to pay at order creation.
// The choice is immutable for the life of the order.
type PaymentMethod string

const (
	// MethodCashOnDelivery settles at the door; no gateway involved.
	MethodCashOnDelivery PaymentMethod = "cash_on_delivery"

	// MethodCard charges a card through the payment gateway.
	MethodCard PaymentMethod = "card"

	// MethodBankTransfer settles through a gateway-verified transfer.
	MethodBankTransfer PaymentMethod = "bank_transfer"

	// MethodEWallet charges a mobile wallet through the payment gateway.
	MethodEWallet PaymentMethod = "e_wallet"
)

func getValidPaymentMethods() map[PaymentMethod]struct{} {
	return map[PaymentMethod]struct{}{
		MethodCashOnDelivery: {},
		MethodCard:           {},
		MethodBankTransfer:   {},
		MethodEWallet:        {},
	}
}

// PaymentMethodFromString parses a payment method from its wire representation.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	method := PaymentMethod(s)
	if err := method.Validate(); err != nil {
		return "", err
	}
	return method, nil
}

// Validate checks that the method is one of the supported payment methods.
func (m PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethods()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%q is not a valid payment method", string(m)))
	}
	return nil
}

// String returns the method's wire representation.
func (m PaymentMethod) String() string {
	return string(m)
}

// UsesGateway reports whether the method settles through the payment gateway.
// Cash on delivery is the only method that does not.
func (m PaymentMethod) UsesGateway() bool {
	return m != MethodCashOnDelivery
}
