package ports

import (
	"context"

	"lunchbox/internal/core/domain/model/pricing"
)

// PricingConfigRepository stores the single live pricing configuration.
type PricingConfigRepository interface {
	// Get returns the stored configuration, or pricing.DefaultConfig when
	// none has been saved yet.
	Get(ctx context.Context) (*pricing.Config, error)

	// Save inserts the configuration when it was never stored and otherwise
	// updates it guarded by its version. A concurrent change surfaces as
	// errs.VersionConflictError.
	Save(ctx context.Context, cfg *pricing.Config) error
}
