package queries_test

import (
	"context"

	"lunchbox/internal/core/application/usecases/queries"
	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/core/domain/model/pricing"
	"lunchbox/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// MockMenuRepository only answers the reads the queries make.
type MockMenuRepository struct {
	mock.Mock
	ports.MenuRepository
}

func (m *MockMenuRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Item, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*menu.Item), args.Error(1)
}

func (m *MockMenuRepository) GetAll(ctx context.Context) ([]*menu.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*menu.Item), args.Error(1)
}

func (m *MockMenuRepository) LoadCalendar(ctx context.Context, ids []kernel.UUID) (menu.Calendar, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(menu.Calendar), args.Error(1)
}

type MockSizeTierRepository struct {
	mock.Mock
	ports.SizeTierRepository
}

func (m *MockSizeTierRepository) GetAll(ctx context.Context) ([]menu.SizeTier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]menu.SizeTier), args.Error(1)
}

type MockPricingConfigRepository struct {
	mock.Mock
	ports.PricingConfigRepository
}

func (m *MockPricingConfigRepository) Get(ctx context.Context) (*pricing.Config, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Config), args.Error(1)
}

type MockCatalogReader struct {
	menus   *MockMenuRepository
	tiers   *MockSizeTierRepository
	configs *MockPricingConfigRepository
}

func newMockCatalogReader() *MockCatalogReader {
	return &MockCatalogReader{
		menus:   new(MockMenuRepository),
		tiers:   new(MockSizeTierRepository),
		configs: new(MockPricingConfigRepository),
	}
}

func (r *MockCatalogReader) MenuRepository() ports.MenuRepository {
	return r.menus
}

func (r *MockCatalogReader) SizeTierRepository() ports.SizeTierRepository {
	return r.tiers
}

func (r *MockCatalogReader) PricingConfigRepository() ports.PricingConfigRepository {
	return r.configs
}

func (r *MockCatalogReader) Create() queries.CatalogReader {
	return r
}
