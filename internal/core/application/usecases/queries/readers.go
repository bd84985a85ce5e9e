// Package queries contains the read operations of the lunchbox backend.
// Listing queries read the tables directly through gorm; queries that need
// domain rules (pricing, availability) go through the repositories.
package queries

import (
	"lunchbox/internal/core/application/usecases"
	"lunchbox/internal/core/ports"
)

// CatalogReader is what the quote and menu queries read from. A unit of work
// on which Begin was never called reads straight from the pool.
type CatalogReader interface {
	usecases.CatalogSource
	PricingConfigRepository() ports.PricingConfigRepository
}

type CatalogReaderFactory interface {
	Create() CatalogReader
}
