// Package shipment provides the Shipment aggregate and its status state machine.
//
// The package includes:
//   - Shipment: the aggregate root holding owner, company, destination,
//     weight, derived price and status
//   - Status: the state machine governing status transitions
//
// Key business rules:
//   - Weight must be a finite number greater than zero and never changes
//   - Price is derived from weight by the pricing engine and never changes
//   - New shipments start in Preparing
//   - Preparing -> Shipped | Cancelled, Shipped -> Delivered | Cancelled
//   - Delivered and Cancelled are terminal; moving to the current status is illegal
package shipment
