package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Execute(ctx context.Context, payload DeliveryPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// fakeAcknowledger registra Ack/Nack sem precisar de um broker.
type fakeAcknowledger struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked = true
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return f.Nack(tag, false, requeue)
}

func testPayload() DeliveryPayload {
	return DeliveryPayload{
		DeliveryID: "d-123",
		Instance:   "main",
		Kind:       "sendText",
		Body:       map[string]any{"number": "5511999999999", "text": "oi"},
	}
}

func TestPublishDelivery(t *testing.T) {
	pub := new(MockPublisher)
	pub.On("PublishWithContext", mock.Anything, ExchangeName, RoutingKey, false, false,
		mock.MatchedBy(func(msg amqp.Publishing) bool {
			var got DeliveryPayload
			if err := json.Unmarshal(msg.Body, &got); err != nil {
				return false
			}
			return msg.ContentType == "application/json" &&
				msg.DeliveryMode == amqp.Persistent &&
				msg.MessageId == "d-123" &&
				got.Kind == "sendText" &&
				got.Body["text"] == "oi"
		}),
	).Return(nil)

	err := NewProducer(pub).PublishDelivery(context.Background(), testPayload())

	require.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestPublishDeliveryError(t *testing.T) {
	pub := new(MockPublisher)
	pub.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("channel closed"))

	err := NewProducer(pub).PublishDelivery(context.Background(), testPayload())

	assert.ErrorContains(t, err, "channel closed")
}

func TestWorkerAcksOnSuccess(t *testing.T) {
	dispatcher := new(MockDispatcher)
	dispatcher.On("Execute", mock.Anything, testPayload()).Return(nil)
	body, _ := json.Marshal(testPayload())
	ack := &fakeAcknowledger{}

	w := NewWorker(nil, dispatcher)
	w.handle(context.Background(), amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body})

	assert.True(t, ack.acked)
	assert.False(t, ack.nacked)
	dispatcher.AssertExpectations(t)
}

func TestWorkerNacksOnFailure(t *testing.T) {
	dispatcher := new(MockDispatcher)
	dispatcher.On("Execute", mock.Anything, mock.Anything).Return(errors.New("gateway down"))
	body, _ := json.Marshal(testPayload())
	ack := &fakeAcknowledger{}

	w := NewWorker(nil, dispatcher)
	w.handle(context.Background(), amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body})

	assert.False(t, ack.acked)
	assert.True(t, ack.nacked)
	assert.False(t, ack.requeue)
}

func TestWorkerNacksInvalidJSON(t *testing.T) {
	dispatcher := new(MockDispatcher)
	ack := &fakeAcknowledger{}

	w := NewWorker(nil, dispatcher)
	w.handle(context.Background(), amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte("{")})

	assert.True(t, ack.nacked)
	dispatcher.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestWorkerRequeuesWhenShutdownInterruptsDelivery(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	dispatcher := new(MockDispatcher)
	dispatcher.On("Execute", mock.Anything, testPayload()).
		Run(func(mock.Arguments) { cancel() }).
		Return(context.Canceled)
	body, _ := json.Marshal(testPayload())
	ack := &fakeAcknowledger{}

	w := NewWorker(nil, dispatcher)
	w.handle(ctx, amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body})

	assert.False(t, ack.acked)
	assert.True(t, ack.nacked)
	assert.True(t, ack.requeue)
}

func TestWorkerRequeuesWithoutDispatchingAfterShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dispatcher := new(MockDispatcher)
	body, _ := json.Marshal(testPayload())
	ack := &fakeAcknowledger{}

	w := NewWorker(nil, dispatcher)
	w.handle(ctx, amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body, MessageId: "d-123"})

	assert.True(t, ack.nacked)
	assert.True(t, ack.requeue)
	dispatcher.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
