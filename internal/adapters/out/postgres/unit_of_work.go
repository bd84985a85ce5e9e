// Package postgres provides the GORM implementation of the unit of work.
//
// A unit of work wraps one database transaction. Repositories handed out
// after Begin run inside it and register the aggregates they write; once
// Commit succeeds the domain events recorded by those aggregates are handed
// to the event publisher. Events of a rolled back unit of work are dropped.
//
//	factory := NewGormUnitOfWorkFactory(db, publisher, logger)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each instance is meant for a single goroutine and a single transaction.
package postgres

import (
	"context"
	"log/slog"

	"lunchbox/internal/adapters/out/postgres/menurepo"
	"lunchbox/internal/adapters/out/postgres/orderrepo"
	"lunchbox/internal/adapters/out/postgres/paymentrepo"
	"lunchbox/internal/adapters/out/postgres/pricingrepo"
	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is implemented by aggregates that record domain events.
type eventSource interface {
	Events() []kernel.DomainEvent
	ClearEvents()
}

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	for _, migrate := range []func(*gorm.DB) error{
		menurepo.Migrate,
		pricingrepo.Migrate,
		orderrepo.Migrate,
		paymentrepo.Migrate,
	} {
		if err := migrate(db); err != nil {
			return err
		}
	}
	return nil
}

// SeedDefaultMenu stores the standard menu and creates the items missing for
// it in one transaction. It returns the number of items created.
func SeedDefaultMenu(ctx context.Context, db *gorm.DB, defaults []menu.DefaultItem) (int, error) {
	var created int
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := menurepo.NewGormMenuRepository(tx, &GormUnitOfWork{db: tx}).SeedDefaults(ctx, defaults)
		created = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool and one event publisher.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates the factory. publisher may be nil, in
// which case events are discarded after commit.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db, amqp.NewLogPublisher(logger), logger)
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger,
	}
}

// Create produces a fresh unit of work with no transaction and nothing
// tracked.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the aggregates
// written inside it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is
// open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit commits the transaction and then publishes the recorded events.
// A publishing failure is logged and does not undo the commit.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishEvents(ctx)
	return nil
}

// Rollback discards the transaction and the tracked aggregates. It returns
// gorm.ErrInvalidTransaction when no transaction is open, which is the case
// after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SizeTierRepository() ports.SizeTierRepository {
	return menurepo.NewGormSizeTierRepository(uow.conn())
}

func (uow *GormUnitOfWork) PricingConfigRepository() ports.PricingConfigRepository {
	return pricingrepo.NewGormPricingConfigRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn is the open transaction, or the pool when none is open.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishEvents(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)

	seen := make(map[eventSource]struct{}, len(tracked))
	var events []kernel.DomainEvent
	for _, t := range tracked {
		src, ok := t.Aggregate.(eventSource)
		if !ok {
			continue
		}
		if _, dup := seen[src]; dup {
			continue
		}
		seen[src] = struct{}{}
		events = append(events, src.Events()...)
		src.ClearEvents()
	}

	if len(events) == 0 || uow.publisher == nil {
		return
	}
	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.logger.ErrorContext(ctx, "publish domain events", "count", len(events), "error", err)
	}
}
