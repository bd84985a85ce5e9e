// Package kernel provides the shared value objects of the lunchbox domain.
//
// The package includes:
//   - UUID: identifiers for menu items, orders, customers and payments
//   - Money: a non-negative, two-digit decimal amount backed by shopspring/decimal
//   - Date: a calendar date with ISO weekday numbering (1 = Monday .. 7 = Sunday)
//   - GeoPoint: the optional delivery coordinates captured with an order
//   - DomainEvent: the contract of events recorded by aggregates
//
// All values are immutable. Zero values are invalid and fail Validate; build
// them through their constructors.
package kernel
