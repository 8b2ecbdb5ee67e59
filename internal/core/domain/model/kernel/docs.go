// Package kernel provides the value objects shared by the user, company and
// shipment aggregates.
//
// The package includes:
//   - UUID: the identifier type of every aggregate
//   - Destination: a shipment target, either a registered company or a
//     free-form address
//
// Values are immutable and validated on construction.
package kernel
