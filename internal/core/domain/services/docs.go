// Package services provides domain services that compute derived views across
// domain entities in the marketplace order engine. It implements logic that
// doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - DeliveryProgress: A domain service mapping an order's tracking history
//     to a display progress percentage
//
// Domain services are stateless and side-effect-free, following
// Domain-Driven Design principles.
package services
