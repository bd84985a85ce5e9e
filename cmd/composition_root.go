package cmd

import (
	"log/slog"
	"time"

	httpin "lunchbox/internal/adapters/in/http"
	"lunchbox/internal/adapters/out/postgres"
	"lunchbox/internal/core/application/usecases/commands"
	"lunchbox/internal/core/application/usecases/queries"
	"lunchbox/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      func() time.Time
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		clock:      time.Now,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderingUoWFactory = FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.clock)
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterPaymentCommandHandler() commands.RegisterPaymentCommandHandler {
	return commands.NewRegisterPaymentCommandHandler(c.paymentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.paymentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRefusePaymentCommandHandler() commands.RefusePaymentCommandHandler {
	return commands.NewRefusePaymentCommandHandler(c.paymentUoWFactory(), c.clock)
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateSetMenuItemActiveCommandHandler() commands.SetMenuItemActiveCommandHandler {
	return commands.NewSetMenuItemActiveCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateSetDateAvailabilityCommandHandler() commands.SetDateAvailabilityCommandHandler {
	return commands.NewSetDateAvailabilityCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateSetWeeklyAvailabilityCommandHandler() commands.SetWeeklyAvailabilityCommandHandler {
	return commands.NewSetWeeklyAvailabilityCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateResetDefaultMenuCommandHandler() commands.ResetDefaultMenuCommandHandler {
	return commands.NewResetDefaultMenuCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateCreateSizeTierCommandHandler() commands.CreateSizeTierCommandHandler {
	var f commands.SizeTierUoWFactory = FuncSizeTierUoWFactory(func() commands.SizeTierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateSizeTierCommandHandler(f)
}

func (c *CompositionRoot) pricingUoWFactory() commands.PricingUoWFactory {
	return FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSetPricingStrategyCommandHandler() commands.SetPricingStrategyCommandHandler {
	return commands.NewSetPricingStrategyCommandHandler(c.pricingUoWFactory())
}

func (c *CompositionRoot) CreateConfigurePricingCommandHandler() commands.ConfigurePricingCommandHandler {
	return commands.NewConfigurePricingCommandHandler(c.pricingUoWFactory())
}

func (c *CompositionRoot) catalogReaders() queries.CatalogReaderFactory {
	return FuncCatalogReaderFactory(func() queries.CatalogReader {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateGetQuoteQueryHandler() queries.GetQuoteQueryHandler {
	return queries.NewGetQuoteQueryHandler(c.catalogReaders())
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.catalogReaders())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentQueryHandler() queries.GetPaymentQueryHandler {
	return queries.NewGetPaymentQueryHandler(c.gormDB)
}

// CreateHTTPHandlers collects every use case the HTTP server exposes.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:  c.CreateChangeOrderStatusCommandHandler(),
		RegisterPayment:    c.CreateRegisterPaymentCommandHandler(),
		ConfirmPayment:     c.CreateConfirmPaymentCommandHandler(),
		RefusePayment:      c.CreateRefusePaymentCommandHandler(),
		CreateMenuItem:     c.CreateCreateMenuItemCommandHandler(),
		SetMenuItemActive:  c.CreateSetMenuItemActiveCommandHandler(),
		SetDateAvailable:   c.CreateSetDateAvailabilityCommandHandler(),
		SetWeeklyAvailable: c.CreateSetWeeklyAvailabilityCommandHandler(),
		ResetDefaultMenu:   c.CreateResetDefaultMenuCommandHandler(),
		CreateSizeTier:     c.CreateCreateSizeTierCommandHandler(),
		SetStrategy:        c.CreateSetPricingStrategyCommandHandler(),
		ConfigurePricing:   c.CreateConfigurePricingCommandHandler(),

		GetQuote:      c.CreateGetQuoteQueryHandler(),
		GetMenu:       c.CreateGetMenuQueryHandler(),
		GetOrder:      c.CreateGetOrderQueryHandler(),
		GetOpenOrders: c.CreateGetOpenOrdersQueryHandler(),
		GetPayment:    c.CreateGetPaymentQueryHandler(),
	}
}

type FuncOrderingUoWFactory func() commands.OrderingUoW

func (f FuncOrderingUoWFactory) Create() commands.OrderingUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncSizeTierUoWFactory func() commands.SizeTierUoW

func (f FuncSizeTierUoWFactory) Create() commands.SizeTierUoW {
	return f()
}

type FuncPricingUoWFactory func() commands.PricingUoW

func (f FuncPricingUoWFactory) Create() commands.PricingUoW {
	return f()
}

type FuncCatalogReaderFactory func() queries.CatalogReader

func (f FuncCatalogReaderFactory) Create() queries.CatalogReader {
	return f()
}
