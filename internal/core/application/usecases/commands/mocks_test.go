package commands_test

import (
	"context"

	"lunchbox/internal/core/application/usecases/commands"
	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/core/domain/model/order"
	"lunchbox/internal/core/domain/model/payment"
	"lunchbox/internal/core/domain/model/pricing"
	"lunchbox/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, item *menu.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, item *menu.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Item), args.Error(1)
}

func (m *MockMenuRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Item, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*menu.Item), args.Error(1)
}

func (m *MockMenuRepository) GetAll(ctx context.Context) ([]*menu.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*menu.Item), args.Error(1)
}

func (m *MockMenuRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockMenuRepository) LoadCalendar(ctx context.Context, ids []kernel.UUID) (menu.Calendar, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(menu.Calendar), args.Error(1)
}

func (m *MockMenuRepository) SaveDateOverride(ctx context.Context, o menu.DateOverride) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockMenuRepository) SaveWeeklyPattern(ctx context.Context, p menu.WeeklyPattern) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockMenuRepository) GetDefaults(ctx context.Context) ([]menu.DefaultItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]menu.DefaultItem), args.Error(1)
}

type MockSizeTierRepository struct{ mock.Mock }

func (m *MockSizeTierRepository) Add(ctx context.Context, tier menu.SizeTier) error {
	args := m.Called(ctx, tier)
	return args.Error(0)
}

func (m *MockSizeTierRepository) GetAll(ctx context.Context) ([]menu.SizeTier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]menu.SizeTier), args.Error(1)
}

type MockPricingConfigRepository struct{ mock.Mock }

func (m *MockPricingConfigRepository) Get(ctx context.Context) (*pricing.Config, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Config), args.Error(1)
}

func (m *MockPricingConfigRepository) Save(ctx context.Context, cfg *pricing.Config) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

// MockUoW satisfies every unit of work combination handlers depend on.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

func (m *MockUoW) SizeTierRepository() ports.SizeTierRepository {
	args := m.Called()
	return args.Get(0).(ports.SizeTierRepository)
}

func (m *MockUoW) PricingConfigRepository() ports.PricingConfigRepository {
	args := m.Called()
	return args.Get(0).(ports.PricingConfigRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

type MockSizeTierUoWFactory struct{ mock.Mock }

func (m *MockSizeTierUoWFactory) Create() commands.SizeTierUoW {
	args := m.Called()
	return args.Get(0).(commands.SizeTierUoW)
}

type MockPricingUoWFactory struct{ mock.Mock }

func (m *MockPricingUoWFactory) Create() commands.PricingUoW {
	args := m.Called()
	return args.Get(0).(commands.PricingUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockOrderingUoWFactory struct{ mock.Mock }

func (m *MockOrderingUoWFactory) Create() commands.OrderingUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderingUoW)
}
