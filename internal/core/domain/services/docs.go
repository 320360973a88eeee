// Package services provides domain services that implement business rules
// spanning multiple domain entities in the order management system.
//
// The package includes:
//   - OrderPricer: A domain service computing order totals and shipping costs
//
// Domain services hold logic that doesn't naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services
