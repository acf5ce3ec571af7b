// Package order provides domain entities and business logic for the courier
// console's order lifecycle. It implements the Order aggregate root with
// state transitions and display derivations.
//
// The package includes:
//   - Order: the aggregate root managing identity, contents and lifecycle
//   - Status: a state machine enforcing valid status transitions
//   - Item: an immutable order line with subtotal arithmetic
//   - Customer: the immutable contact record attached to an order
//
// Key business rules:
//   - Orders must have a valid identifier, customer, address and at least one item
//   - Status follows a strict workflow: new -> accepted -> completed
//   - No transition skips a state and none reverses; completed is terminal
//   - Invalid transitions are rejected with explicit errors, never applied silently
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation so business rules cannot be bypassed.
package order
