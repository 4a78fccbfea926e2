// Package order provides domain entities and business logic for the marketplace
// order lifecycle. It implements the Order aggregate root with its immutable
// line-item snapshots, the two status axes (fulfillment and payment), the
// append-only tracking ledger entry, and the transition authority that decides
// which actor may move an order into which state.
//
// The package includes:
//   - Order: The aggregate root owning identity, money, items, and both status axes
//   - Item: An immutable point-in-time snapshot of a catalog product
//   - TrackingEvent: One append-only entry of the order's audit ledger
//   - Status / PaymentStatus / PaymentMethod: Validated enumerations
//   - TransitionAuthority: The two-layer (state graph + role filter) decision function
//
// Key business rules:
//   - totalAmount always equals subTotal + taxAmount + shippingCost − discountAmount
//   - Item snapshots are never altered by later catalog edits
//   - Fulfillment follows pending -> confirmed -> processing -> shipped ->
//     in_transit -> delivered, with cancellation possible before delivery
//   - delivered, cancelled, and refunded are terminal
//   - The payment axis moves independently of fulfillment; paidAt is set once
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
