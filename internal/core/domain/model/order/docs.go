// Package order contains the Order aggregate root and its lifecycle state
// machine. An order is created by a customer against a single restaurant,
// carries a set of product lines priced at order time, and is advanced by the
// restaurant owner along a single linear path: pending, started, sent,
// delivered. Each transition stamps its timestamp exactly once.
package order
