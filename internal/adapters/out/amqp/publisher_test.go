package amqp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error) {
	args := m.Called(ctx, exchange, key, msg)
	conf, _ := args.Get(0).(confirmation)
	return conf, args.Error(1)
}

func (m *mockChannel) Close() error {
	return m.Called().Error(0)
}

// brokerConfirmation answers WaitContext with the first value sent on
// answer.
type brokerConfirmation struct {
	answer chan bool
}

func newBrokerConfirmation() brokerConfirmation {
	return brokerConfirmation{answer: make(chan bool, 1)}
}

func (c brokerConfirmation) WaitContext(ctx context.Context) (bool, error) {
	select {
	case ack := <-c.answer:
		return ack, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

var at = time.Date(2024, time.May, 6, 12, 0, 0, 0, time.UTC)

func statusChanged() order.StatusChanged {
	return order.StatusChanged{
		OrderID: kernel.MustUUID("550e8400-e29b-41d4-a716-446655440000"),
		From:    order.Created,
		To:      order.Paid,
		At:      at,
	}
}

func TestPublisher_Publish_RoutesByEventName(t *testing.T) {
	ctx := t.Context()
	ch := new(mockChannel)
	var sent amqp.Publishing
	ch.On("publish", ctx, "orders_topic", order.EventStatusChanged, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(3).(amqp.Publishing) }).
		Return(nil, nil).Once()

	p := newPublisher(ch, DefaultExchange)
	require.NoError(t, p.Publish(ctx, statusChanged()))

	assert.Equal(t, "application/json", sent.ContentType)
	assert.Equal(t, amqp.Persistent, sent.DeliveryMode)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", sent.CorrelationId)

	var msg Message
	require.NoError(t, json.Unmarshal(sent.Body, &msg))
	assert.Equal(t, order.EventStatusChanged, msg.Event)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", msg.AggregateID)
	assert.True(t, at.Equal(msg.OccurredAt))
	assert.Equal(t, "PAGO", msg.Payload["to"])
	ch.AssertExpectations(t)
}

func TestPublisher_Publish_WaitsForConfirm(t *testing.T) {
	ctx := t.Context()
	acked, nacked := newBrokerConfirmation(), newBrokerConfirmation()
	ch := new(mockChannel)
	ch.On("publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(acked, nil).Once()
	ch.On("publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nacked, nil).Once()

	p := newPublisher(ch, DefaultExchange)

	acked.answer <- true
	require.NoError(t, p.Publish(ctx, statusChanged()))

	nacked.answer <- false
	require.ErrorIs(t, p.Publish(ctx, statusChanged()), ErrPublishNacked)
}

func TestPublisher_Publish_StopsAtFirstFailure(t *testing.T) {
	ctx := t.Context()
	ch := new(mockChannel)
	ch.On("publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("channel closed")).Once()

	p := newPublisher(ch, DefaultExchange)
	err := p.Publish(ctx, statusChanged(), statusChanged())

	require.Error(t, err)
	assert.Contains(t, err.Error(), order.EventStatusChanged)
	ch.AssertNumberOfCalls(t, "publish", 1)
}

func TestPublisher_Publish_ContextCancelledWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	ch := new(mockChannel)
	ch.On("publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(newBrokerConfirmation(), nil)

	p := newPublisher(ch, DefaultExchange)
	require.ErrorIs(t, p.Publish(ctx, statusChanged()), context.Canceled)
}

func TestPublisher_Publish_LateAnswerDoesNotLeakIntoNextPublish(t *testing.T) {
	first, second := newBrokerConfirmation(), newBrokerConfirmation()
	cancelled, cancel := context.WithCancel(t.Context())
	ch := new(mockChannel)
	ch.On("publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(first, nil).Once()
	ch.On("publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(second, nil).Once()

	p := newPublisher(ch, DefaultExchange)
	require.ErrorIs(t, p.Publish(cancelled, statusChanged()), context.Canceled)

	first.answer <- false
	second.answer <- true
	require.NoError(t, p.Publish(t.Context(), statusChanged()))
	ch.AssertExpectations(t)
}

func TestLogPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	require.NoError(t, NewLogPublisher(logger).Publish(t.Context(), statusChanged()))

	assert.Contains(t, buf.String(), `"event":"order.status_changed"`)
	assert.Contains(t, buf.String(), `"component":"events"`)
}
