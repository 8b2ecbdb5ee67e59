// Package services provides stateless domain services.
//
// The package includes:
//   - PricingEngine: derives a shipment's price from its weight
package services
