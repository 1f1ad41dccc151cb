package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/evolution-relay/internal/entity"
	"github.com/xavierca1/evolution-relay/internal/infra/integration/evolution"
	"github.com/xavierca1/evolution-relay/internal/infra/mail"
	"github.com/xavierca1/evolution-relay/internal/infra/queue"
)

// MockDeliveryRepository
type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) Create(ctx context.Context, d *entity.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) FindByID(ctx context.Context, id string) (*entity.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) Claim(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeliveryRepository) Release(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDeliveryRepository) MarkSent(ctx context.Context, id, remoteID string) error {
	args := m.Called(ctx, id, remoteID)
	return args.Error(0)
}

func (m *MockDeliveryRepository) MarkFailed(ctx context.Context, id string, code int, message string) error {
	args := m.Called(ctx, id, code, message)
	return args.Error(0)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishDelivery(ctx context.Context, payload queue.DeliveryPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockGateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) result(args mock.Arguments) (map[string]any, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockGateway) Send(ctx context.Context, instance, kind string, body map[string]any) (map[string]any, error) {
	return m.result(m.Called(ctx, instance, kind, body))
}

func (m *MockGateway) HandleLabel(ctx context.Context, instance string, label entity.Label) (map[string]any, error) {
	return m.result(m.Called(ctx, instance, label))
}

func (m *MockGateway) OfferCall(ctx context.Context, instance string, call entity.Call) (map[string]any, error) {
	return m.result(m.Called(ctx, instance, call))
}

func (m *MockGateway) ConnectionState(ctx context.Context, instance string) (map[string]any, error) {
	return m.result(m.Called(ctx, instance))
}

func (m *MockGateway) CreateInstance(ctx context.Context, in evolution.CreateInstanceInput) (map[string]any, error) {
	return m.result(m.Called(ctx, in))
}

func (m *MockGateway) FetchInstances(ctx context.Context, instanceName string) (map[string]any, error) {
	return m.result(m.Called(ctx, instanceName))
}

// MockAlertService
type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) SendDeliveryFailure(ctx context.Context, alert mail.DeliveryFailureAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

// MockMetrics
type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) DeliveryEnqueued(kind string) {
	m.Called(kind)
}

func (m *MockMetrics) DeliveryFinished(kind, status string) {
	m.Called(kind, status)
}

func (m *MockMetrics) GatewayError(code int) {
	m.Called(code)
}
