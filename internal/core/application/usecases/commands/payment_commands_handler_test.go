package commands_test

import (
	"testing"

	"lunchbox/internal/core/application/usecases/commands"
	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/order"
	"lunchbox/internal/core/domain/model/payment"
	"lunchbox/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentMocks struct {
	orders   *MockOrderRepository
	payments *MockPaymentRepository
	uow      *MockUoW
	factory  *MockPaymentUoWFactory
}

func newPaymentMocks() paymentMocks {
	m := paymentMocks{
		orders:   new(MockOrderRepository),
		payments: new(MockPaymentRepository),
		uow:      new(MockUoW),
		factory:  new(MockPaymentUoWFactory),
	}
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("OrderRepository").Return(m.orders).Maybe()
	m.uow.On("PaymentRepository").Return(m.payments).Maybe()
	return m
}

func (m paymentMocks) assert(t *testing.T) {
	t.Helper()
	m.orders.AssertExpectations(t)
	m.payments.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.factory.AssertExpectations(t)
}

func TestRegisterPaymentCommandHandler_Handle_CreatesWithOrderTotal(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Created)
	paymentID := kernel.NewUUID()
	cmd, err := commands.NewRegisterPaymentCommand(paymentID, o.ID(), "PIX", nil, payment.Details{PixTxID: "E1"})
	require.NoError(t, err)

	m := newPaymentMocks()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		m.payments.On("GetByOrder", ctx, o.ID()).Return(nil, errs.NewObjectNotFoundError("payment", o.ID())).Once(),
		m.payments.On("Add", ctx, mock.AnythingOfType("*payment.Payment")).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRegisterPaymentCommandHandler(m.factory, fixedClock)
	p, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, paymentID, p.ID())
	assert.Equal(t, o.ID(), p.OrderID())
	assert.True(t, o.Total().Equal(p.Amount()))
	assert.Equal(t, payment.Pix, p.Method())
	assert.Equal(t, payment.Pending, p.Status())
	assert.Equal(t, "E1", p.PixTxID())
	m.assert(t)
}

func TestRegisterPaymentCommandHandler_Handle_NewPaymentNeedsMethod(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Created)
	cmd, _ := commands.NewRegisterPaymentCommand(kernel.NewUUID(), o.ID(), "", nil, payment.Details{})

	m := newPaymentMocks()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	m.payments.On("GetByOrder", ctx, o.ID()).Return(nil, errs.NewObjectNotFoundError("payment", o.ID())).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewRegisterPaymentCommandHandler(m.factory, fixedClock)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	m.payments.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRegisterPaymentCommandHandler_Handle_EditsPendingPayment(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Created)
	existing := storedPayment(t, o, payment.Pending)
	amount := kernel.MustMoney("12.50")
	cmd, _ := commands.NewRegisterPaymentCommand(kernel.NewUUID(), o.ID(), "DINHEIRO", &amount,
		payment.Details{Note: "change for 20"})

	m := newPaymentMocks()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	m.payments.On("GetByOrder", ctx, o.ID()).Return(existing, nil).Once()
	m.payments.On("Update", ctx, existing).Return(nil).Once()
	m.uow.On("Commit", ctx).Return(nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewRegisterPaymentCommandHandler(m.factory, fixedClock)
	p, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, existing.ID(), p.ID())
	assert.Equal(t, payment.Cash, p.Method())
	assert.True(t, amount.Equal(p.Amount()))
	assert.Equal(t, "change for 20", p.Note())
	m.assert(t)
}

func TestRegisterPaymentCommandHandler_Handle_ConfirmedPaymentIsFrozen(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Paid)
	existing := storedPayment(t, o, payment.Confirmed)
	cmd, _ := commands.NewRegisterPaymentCommand(kernel.NewUUID(), o.ID(), "CARTAO", nil, payment.Details{})

	m := newPaymentMocks()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	m.payments.On("GetByOrder", ctx, o.ID()).Return(existing, nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewRegisterPaymentCommandHandler(m.factory, fixedClock)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, payment.ErrPaymentNotPending)
	m.payments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRegisterPaymentCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewRegisterPaymentCommand(kernel.NewUUID(), orderID, "PIX", nil, payment.Details{})

	m := newPaymentMocks()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.orders.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewRegisterPaymentCommandHandler(m.factory, fixedClock)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	m.payments.AssertNotCalled(t, "GetByOrder", mock.Anything, mock.Anything)
}

func TestConfirmPaymentCommandHandler_Handle_MarksOrderPaid(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Created)
	p := storedPayment(t, o, payment.Pending)
	cmd, _ := commands.NewConfirmPaymentCommand(o.ID())

	m := newPaymentMocks()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.payments.On("GetByOrder", ctx, o.ID()).Return(p, nil).Once(),
		m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		m.payments.On("Update", ctx, p).Return(nil).Once(),
		m.orders.On("Update", ctx, o).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewConfirmPaymentCommandHandler(m.factory, fixedClock)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, payment.Confirmed, p.Status())
	require.NotNil(t, p.ConfirmedAt())
	assert.Equal(t, handlerNow, *p.ConfirmedAt())
	assert.Equal(t, order.Paid, o.Status())
	m.assert(t)
}

func TestConfirmPaymentCommandHandler_Handle_AlreadyConfirmedIsNoop(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Paid)
	p := storedPayment(t, o, payment.Confirmed)
	cmd, _ := commands.NewConfirmPaymentCommand(o.ID())

	m := newPaymentMocks()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.payments.On("GetByOrder", ctx, o.ID()).Return(p, nil).Once()
	m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewConfirmPaymentCommandHandler(m.factory, fixedClock)
	require.NoError(t, h.Handle(ctx, cmd))

	m.payments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestConfirmPaymentCommandHandler_Handle_RefusedPayment(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Created)
	p := storedPayment(t, o, payment.Refused)
	cmd, _ := commands.NewConfirmPaymentCommand(o.ID())

	m := newPaymentMocks()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.payments.On("GetByOrder", ctx, o.ID()).Return(p, nil).Once()
	m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewConfirmPaymentCommandHandler(m.factory, fixedClock)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, payment.ErrPaymentRefused)
	assert.Equal(t, order.Created, o.Status())
}

func TestConfirmPaymentCommandHandler_Handle_OrderNoLongerCreated(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Cancelled)
	p := storedPayment(t, o, payment.Pending)
	cmd, _ := commands.NewConfirmPaymentCommand(o.ID())

	m := newPaymentMocks()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.payments.On("GetByOrder", ctx, o.ID()).Return(p, nil).Once()
	m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewConfirmPaymentCommandHandler(m.factory, fixedClock)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, payment.Pending, p.Status())
}

func TestRefusePaymentCommandHandler_Handle(t *testing.T) {
	t.Run("refuses and keeps the reason", func(t *testing.T) {
		ctx := t.Context()
		o := storedOrder(t, order.Created)
		p := storedPayment(t, o, payment.Pending)
		cmd, _ := commands.NewRefusePaymentCommand(o.ID(), "card declined")

		m := newPaymentMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.payments.On("GetByOrder", ctx, o.ID()).Return(p, nil).Once(),
			m.payments.On("Update", ctx, p).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewRefusePaymentCommandHandler(m.factory, fixedClock)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, payment.Refused, p.Status())
		assert.Equal(t, "card declined", p.Note())
		assert.Equal(t, order.Created, o.Status())
		m.assert(t)
	})

	t.Run("confirmed payment cannot be refused", func(t *testing.T) {
		ctx := t.Context()
		o := storedOrder(t, order.Paid)
		p := storedPayment(t, o, payment.Confirmed)
		cmd, _ := commands.NewRefusePaymentCommand(o.ID(), "")

		m := newPaymentMocks()
		m.uow.On("Begin", ctx).Return(nil).Once()
		m.payments.On("GetByOrder", ctx, o.ID()).Return(p, nil).Once()
		m.uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewRefusePaymentCommandHandler(m.factory, fixedClock)
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, payment.ErrPaymentConfirmed)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
