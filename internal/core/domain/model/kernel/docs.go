// Package kernel provides shared value objects used across the work order
// domain model.
//
// The package includes:
//   - WorkOrderID: human-readable sequential order identifier ("WO-NNN")
//   - DeliveryDate: requested delivery date validated against an entry window
//
// Value objects in this package are immutable, created only through their
// constructor functions, and validate themselves so aggregates can rely on
// them being well-formed.
package kernel
