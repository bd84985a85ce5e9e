package commands

import (
	"context"

	"lunchbox/internal/core/domain/model/pricing"
)

// SetPricingStrategyCommandHandler loads the live configuration, or the
// default one when nothing is stored, changes its strategy and saves it.
// Saving is version-checked; a concurrent change fails with a conflict and
// is not retried.
type SetPricingStrategyCommandHandler struct {
	uowFactory PricingUoWFactory
}

func NewSetPricingStrategyCommandHandler(uowFactory PricingUoWFactory) SetPricingStrategyCommandHandler {
	return SetPricingStrategyCommandHandler{uowFactory: uowFactory}
}

func (h *SetPricingStrategyCommandHandler) Handle(ctx context.Context, cmd SetPricingStrategyCommand) (*pricing.Config, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return updatePricingConfig(ctx, h.uowFactory, func(cfg *pricing.Config) error {
		return cfg.ChangeStrategy(cmd.Strategy())
	})
}

// updatePricingConfig runs change against the live configuration inside one
// unit of work.
func updatePricingConfig(
	ctx context.Context,
	uowFactory PricingUoWFactory,
	change func(cfg *pricing.Config) error,
) (*pricing.Config, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PricingConfigRepository()
	cfg, err := repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err = change(cfg); err != nil {
		return nil, err
	}

	if err = repo.Save(ctx, cfg); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cfg, nil
}
