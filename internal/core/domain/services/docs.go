// Package services provides the domain services of the lunchbox ordering
// system: the decisions that span menu items, availability rules, pricing
// configuration and orders.
//
// The package includes:
//   - AvailabilityResolver: decides whether an item can be sold on a date
//   - PricingEngine: computes a price breakdown under a resolved pricing plan
//   - OrderAssembler: validates a request against a catalog snapshot, prices
//     it and builds the order
//   - OrderStatusMachine: applies status changes and the payment side effects
//
// Every service is synchronous and side-effect free apart from mutating the
// aggregates it is handed. Nothing here touches persistence.
package services
