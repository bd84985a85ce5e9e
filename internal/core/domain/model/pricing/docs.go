// Package pricing holds the pricing configuration singleton and the values the
// pricing engine works with: the resolved Plan, priced input Lines and the
// resulting Breakdown.
//
// Three strategies are mutually exclusive:
//
//	PER_ITEM          sum of unit price times quantity
//	FIXED_SIZE        size base price, extra mixes above the included count, flat side price
//	BASE_PLUS_ADDONS  size base price, extra mixes above one, flat side price
//
// A Plan is the strategy bound to whatever it needs (a size tier or nothing),
// so the engine never sees a FIXED_SIZE request without a tier.
package pricing
