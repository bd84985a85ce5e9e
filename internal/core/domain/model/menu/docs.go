// Package menu models what the kitchen can sell: menu items, their per-date
// and weekly availability, size tiers and the defaults catalog used to restore
// the standard menu.
//
// The package includes:
//   - Item: a sellable menu entry with a category, a unit price and an active flag
//   - DateOverride and WeeklyPattern: the two availability rule kinds
//   - Calendar: an immutable, indexed snapshot of availability rules
//   - SizeTier: a lunchbox size with its base price and composition limits
//   - Catalog: the read-only snapshot an order is assembled against
//   - DefaultItem and ResetToDefaults: the standard menu restore
//
// Availability precedence (inactive, no date, override, weekly, default) is
// decided by services.AvailabilityResolver; this package only stores the rules.
package menu
