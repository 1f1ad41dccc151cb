package usecase

import (
	"context"

	"github.com/xavierca1/evolution-relay/internal/entity"
	"github.com/xavierca1/evolution-relay/internal/infra/integration/evolution"
)

// EvolutionGateway adapta o *evolution.Client ao Gateway, trocando de instância por chamada.
type EvolutionGateway struct {
	Client *evolution.Client
}

func NewEvolutionGateway(client *evolution.Client) *EvolutionGateway {
	return &EvolutionGateway{Client: client}
}

func (g *EvolutionGateway) Send(ctx context.Context, instance, kind string, body map[string]any) (map[string]any, error) {
	return g.Client.WithInstance(instance).Message.Send(ctx, kind, body)
}

func (g *EvolutionGateway) HandleLabel(ctx context.Context, instance string, label entity.Label) (map[string]any, error) {
	return g.Client.WithInstance(instance).Label.Handle(ctx, label)
}

func (g *EvolutionGateway) OfferCall(ctx context.Context, instance string, call entity.Call) (map[string]any, error) {
	return g.Client.WithInstance(instance).Call.Offer(ctx, call)
}

func (g *EvolutionGateway) ConnectionState(ctx context.Context, instance string) (map[string]any, error) {
	return g.Client.WithInstance(instance).Instance.ConnectionState(ctx)
}

func (g *EvolutionGateway) CreateInstance(ctx context.Context, in evolution.CreateInstanceInput) (map[string]any, error) {
	return g.Client.Instance.Create(ctx, in)
}

func (g *EvolutionGateway) FetchInstances(ctx context.Context, instanceName string) (map[string]any, error) {
	return g.Client.Instance.FetchInstances(ctx, instanceName)
}
