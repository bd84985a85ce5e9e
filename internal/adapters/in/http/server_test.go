package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	api "lunchbox/internal/adapters/in/http"
	"lunchbox/internal/core/application/usecases/commands"
	"lunchbox/internal/core/application/usecases/queries"
	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/core/domain/model/order"
	"lunchbox/internal/core/domain/model/pricing"
	"lunchbox/internal/core/ports"
	"lunchbox/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.May, 6, 12, 0, 0, 0, time.UTC)

type MockMenuRepository struct {
	mock.Mock
	ports.MenuRepository
}

func (m *MockMenuRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Item, error) {
	args := m.Called(ctx, ids)
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
	return args.Get(0).(*pricing.Config), args.Error(1)
}

type catalogReader struct {
	menus   *MockMenuRepository
	tiers   *MockSizeTierRepository
	configs *MockPricingConfigRepository
}

func (r catalogReader) Create() queries.CatalogReader { return r }
func (r catalogReader) MenuRepository() ports.MenuRepository { return r.menus }
func (r catalogReader) SizeTierRepository() ports.SizeTierRepository { return r.tiers }
func (r catalogReader) PricingConfigRepository() ports.PricingConfigRepository { return r.configs }

type MockOrderRepository struct {
	mock.Mock
	ports.OrderRepository
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

// orderUoW is a pass-through unit of work over a mocked order repository.
type orderUoW struct {
	orders *MockOrderRepository
}

func (u orderUoW) Create() commands.OrderUoW { return u }
func (u orderUoW) Begin(context.Context) error { return nil }
func (u orderUoW) Commit(context.Context) error { return nil }
func (u orderUoW) Rollback(context.Context) error { return nil }
func (u orderUoW) OrderRepository() ports.OrderRepository { return u.orders }

func newEcho(h api.Handlers) *echo.Echo {
	e := echo.New()
	api.NewServer(h, nil).Register(e)
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	rec := serve(newEcho(api.Handlers{}), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_Quote(t *testing.T) {
	rice, err := menu.NewItem(kernel.NewUUID(), "Rice", menu.Base, kernel.MustMoney("5.00"))
	require.NoError(t, err)

	reader := catalogReader{
		menus:   new(MockMenuRepository),
		tiers:   new(MockSizeTierRepository),
		configs: new(MockPricingConfigRepository),
	}
	reader.configs.On("Get", mock.Anything).Return(pricing.DefaultConfig(), nil)
	reader.menus.On("GetByIDs", mock.Anything, []kernel.UUID{rice.ID()}).Return([]*menu.Item{rice}, nil)
	reader.menus.On("GetByIDs", mock.Anything, mock.Anything).Return([]*menu.Item{}, nil)
	reader.menus.On("LoadCalendar", mock.Anything, mock.Anything).Return(menu.Calendar{}, nil)
	reader.tiers.On("GetAll", mock.Anything).Return([]menu.SizeTier{}, nil)

	e := newEcho(api.Handlers{GetQuote: queries.NewGetQuoteQueryHandler(reader)})

	t.Run("prices the request", func(t *testing.T) {
		body := `{"items":[{"itemId":"` + rice.ID().String() + `","quantity":1}],"date":"2024-05-06"}`
		rec := serve(e, http.MethodPost, "/api/v1/quote", body)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var quote api.Quote
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
		assert.Equal(t, "5.00", quote.Subtotal)
		assert.Equal(t, "PER_ITEM", quote.Strategy)
		assert.Nil(t, quote.Size)
		require.Len(t, quote.Lines, 1)
		assert.Equal(t, "Rice", quote.Lines[0].Name)
	})

	t.Run("empty request is a bad request", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/api/v1/quote", `{"items":[]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed item id", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/api/v1/quote", `{"items":[{"itemId":"nope","quantity":1}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/api/v1/quote", `{"items":`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body api.Error
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Invalid request body", body.Message)
	})
}

func TestServer_ChangeOrderStatus(t *testing.T) {
	line, err := order.NewLine(kernel.NewUUID(), 1, kernel.MustMoney("15.00"))
	require.NoError(t, err)

	newStored := func(status order.Status) *order.Order {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), nil, []order.Line{line},
			kernel.MustMoney("15.00"), status, nil, order.PickupInfo(), now, 1)
		require.NoError(t, err)
		return o
	}

	t.Run("moves the order", func(t *testing.T) {
		o := newStored(order.Paid)
		orders := new(MockOrderRepository)
		orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
		orders.On("Update", mock.Anything, o).Return(nil).Once()

		handler := commands.NewChangeOrderStatusCommandHandler(orderUoW{orders: orders}, func() time.Time { return now })
		e := newEcho(api.Handlers{ChangeOrderStatus: handler})

		rec := serve(e, http.MethodPost, "/api/v1/orders/"+o.ID().String()+"/status", `{"status":"PREPARO"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body api.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "PREPARO", body.Status)
		orders.AssertExpectations(t)
	})

	t.Run("rejected transition is a bad request", func(t *testing.T) {
		o := newStored(order.Delivered)
		orders := new(MockOrderRepository)
		orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

		handler := commands.NewChangeOrderStatusCommandHandler(orderUoW{orders: orders}, func() time.Time { return now })
		e := newEcho(api.Handlers{ChangeOrderStatus: handler})

		rec := serve(e, http.MethodPost, "/api/v1/orders/"+o.ID().String()+"/status", `{"status":"PREPARO"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		id := kernel.NewUUID()
		orders := new(MockOrderRepository)
		orders.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()

		handler := commands.NewChangeOrderStatusCommandHandler(orderUoW{orders: orders}, func() time.Time { return now })
		e := newEcho(api.Handlers{ChangeOrderStatus: handler})

		rec := serve(e, http.MethodPost, "/api/v1/orders/"+id.String()+"/status", `{"status":"PREPARO"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("concurrent change is a conflict", func(t *testing.T) {
		o := newStored(order.Paid)
		orders := new(MockOrderRepository)
		orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
		orders.On("Update", mock.Anything, o).Return(errs.NewVersionConflictError("order", o.ID(), 1)).Once()

		handler := commands.NewChangeOrderStatusCommandHandler(orderUoW{orders: orders}, func() time.Time { return now })
		e := newEcho(api.Handlers{ChangeOrderStatus: handler})

		rec := serve(e, http.MethodPost, "/api/v1/orders/"+o.ID().String()+"/status", `{"status":"PREPARO"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("storage failure hides the cause", func(t *testing.T) {
		id := kernel.NewUUID()
		orders := new(MockOrderRepository)
		orders.On("Get", mock.Anything, id).Return(nil, errors.New("dial tcp: refused")).Once()

		handler := commands.NewChangeOrderStatusCommandHandler(orderUoW{orders: orders}, func() time.Time { return now })
		e := newEcho(api.Handlers{ChangeOrderStatus: handler})

		rec := serve(e, http.MethodPost, "/api/v1/orders/"+id.String()+"/status", `{"status":"PREPARO"}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "dial tcp")
	})
}

func TestServer_GetOrder_MalformedID(t *testing.T) {
	rec := serve(newEcho(api.Handlers{}), http.MethodGet, "/api/v1/orders/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_SetWeeklyAvailability_MalformedWeekday(t *testing.T) {
	target := "/api/v1/menu/items/" + kernel.NewUUID().String() + "/availability/weekdays/monday"
	rec := serve(newEcho(api.Handlers{}), http.MethodPut, target, `{"available":false}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
