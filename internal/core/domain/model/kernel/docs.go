// Package kernel provides shared value objects used across the courier
// console's domain model.
//
// The package includes:
//   - OrderID: opaque order identifier assigned by the order source
//   - Address: free-text delivery destination
//   - UUID: session identifier wrapping github.com/google/uuid
//
// All types are immutable value objects whose zero values are invalid;
// construction goes through validating factory functions so downstream code
// never has to re-check the invariants.
package kernel
