// Package workorder provides domain entities and business logic for work
// order intake and lifecycle management. It implements the WorkOrder
// aggregate root with status transitions and line item ownership.
//
// The package includes:
//   - WorkOrder: the aggregate root holding requester, retailer, shipping,
//     and product line details plus a lifecycle status
//   - Status: a forward-only state machine (Pending -> Processing -> Completed)
//   - LineItem: a product/quantity pair owned exclusively by its work order
//   - Catalog: the closed, configuration-supplied set of selectable products
//
// Key business rules:
//   - Work orders carry sequential human-readable WO-NNN identifiers
//   - Products must be non-empty and every quantity at least 1
//   - Creation time is set once and survives edits
//   - The intake wizard only creates Pending orders; an external process
//     advances status, always forward
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package workorder
