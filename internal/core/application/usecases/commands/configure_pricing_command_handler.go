package commands

import (
	"context"

	"lunchbox/internal/core/domain/model/pricing"
)

// ConfigurePricingCommandHandler updates the add-on prices of the live
// configuration. The strategy is left as it is.
type ConfigurePricingCommandHandler struct {
	uowFactory PricingUoWFactory
}

func NewConfigurePricingCommandHandler(uowFactory PricingUoWFactory) ConfigurePricingCommandHandler {
	return ConfigurePricingCommandHandler{uowFactory: uowFactory}
}

func (h *ConfigurePricingCommandHandler) Handle(ctx context.Context, cmd ConfigurePricingCommand) (*pricing.Config, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return updatePricingConfig(ctx, h.uowFactory, func(cfg *pricing.Config) error {
		if err := cfg.SetIncludedMixCount(cmd.IncludedMixCount()); err != nil {
			return err
		}
		cfg.SetExtraMixPrice(cmd.ExtraMixPrice())
		cfg.SetDefaultSidePrice(cmd.DefaultSidePrice())
		return nil
	})
}
