// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"lunchbox/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest combination it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	SizeTierRepoFactory interface {
		SizeTierRepository() ports.SizeTierRepository
	}

	PricingConfigRepoFactory interface {
		PricingConfigRepository() ports.PricingConfigRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// MenuUoW covers menu item and availability changes.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	SizeTierUoW interface {
		TxManager
		SizeTierRepoFactory
	}

	SizeTierUoWFactory interface {
		Create() SizeTierUoW
	}

	PricingUoW interface {
		TxManager
		PricingConfigRepoFactory
	}

	PricingUoWFactory interface {
		Create() PricingUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW changes a payment and, on confirmation, its order in the
	// same transaction.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// OrderingUoW reads the catalog and pricing configuration and writes the
	// new order, all within one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   cfg, err := uow.PricingConfigRepository().Get(ctx)
	//   catalog, err := usecases.LoadCatalog(ctx, uow, ids)
	//   // ... assemble
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	OrderingUoW interface {
		TxManager
		MenuRepoFactory
		SizeTierRepoFactory
		PricingConfigRepoFactory
		OrderRepoFactory
	}

	OrderingUoWFactory interface {
		Create() OrderingUoW
	}
)
