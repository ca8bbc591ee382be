// Package services provides domain services that operate across work order
// aggregates without naturally belonging to a single aggregate root.
//
// The package includes:
//   - FilterSpec / FilterWorkOrders: the pure listing/filter engine that
//     derives the visible dashboard rows from the full order collection
//
// Domain services here are side-effect free; they never mutate the store
// they read from.
package services
