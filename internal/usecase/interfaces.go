package usecase

import (
	"context"

	"github.com/xavierca1/evolution-relay/internal/entity"
	"github.com/xavierca1/evolution-relay/internal/infra/integration/evolution"
	"github.com/xavierca1/evolution-relay/internal/infra/mail"
	"github.com/xavierca1/evolution-relay/internal/infra/queue"
)

type DeliveryRepository = entity.DeliveryRepositoryInterface

type QueueProducerInterface = queue.QueueProducerInterface

// Gateway é o que os casos de uso precisam da Evolution API. EvolutionGateway é a implementação real.
type Gateway interface {
	Send(ctx context.Context, instance, kind string, body map[string]any) (map[string]any, error)
	HandleLabel(ctx context.Context, instance string, label entity.Label) (map[string]any, error)
	OfferCall(ctx context.Context, instance string, call entity.Call) (map[string]any, error)
	ConnectionState(ctx context.Context, instance string) (map[string]any, error)
	CreateInstance(ctx context.Context, in evolution.CreateInstanceInput) (map[string]any, error)
	FetchInstances(ctx context.Context, instanceName string) (map[string]any, error)
}

// AlertService avisa o operador de uma entrega que falhou (email, WhatsApp).
type AlertService interface {
	SendDeliveryFailure(ctx context.Context, alert mail.DeliveryFailureAlert) error
}

type MetricsRecorder interface {
	DeliveryEnqueued(kind string)
	DeliveryFinished(kind, status string)
	GatewayError(code int)
}

type noopMetrics struct{}

func (noopMetrics) DeliveryEnqueued(string)         {}
func (noopMetrics) DeliveryFinished(string, string) {}
func (noopMetrics) GatewayError(int)                {}
