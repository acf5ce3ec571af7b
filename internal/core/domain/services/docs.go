// Package services provides domain services for display derivations that do
// not belong to a single aggregate.
//
// The package includes:
//   - DeliveryEstimator: derives the promised delivery window from "now"
//   - DirectionsBuilder: builds a driving-directions URL for an address
//
// Both services are pure derivations: no persistence, no recomputation
// triggers, no side effects.
package services
