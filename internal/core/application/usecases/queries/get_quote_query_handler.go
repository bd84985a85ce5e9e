package queries

import (
	"context"

	"lunchbox/internal/core/application/usecases"
	"lunchbox/internal/core/domain/model/pricing"
	"lunchbox/internal/core/domain/services"
)

// GetQuoteQueryHandler runs the same validation and pricing as order
// creation and returns the breakdown.
type GetQuoteQueryHandler struct {
	readers   CatalogReaderFactory
	assembler services.OrderAssembler
}

func NewGetQuoteQueryHandler(readers CatalogReaderFactory) GetQuoteQueryHandler {
	return GetQuoteQueryHandler{
		readers:   readers,
		assembler: services.NewOrderAssembler(services.NewPricingEngine()),
	}
}

func (h GetQuoteQueryHandler) Handle(ctx context.Context, query GetQuoteQuery) (pricing.Breakdown, error) {
	if err := query.Validate(); err != nil {
		return pricing.Breakdown{}, err
	}

	reader := h.readers.Create()
	req := query.Request()

	cfg, err := reader.PricingConfigRepository().Get(ctx)
	if err != nil {
		return pricing.Breakdown{}, err
	}

	catalog, err := usecases.LoadCatalog(ctx, reader, usecases.RequestedItemIDs(req.Lines))
	if err != nil {
		return pricing.Breakdown{}, err
	}

	return h.assembler.Quote(req, catalog, cfg)
}
