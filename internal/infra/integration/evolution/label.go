package evolution

import (
	"context"

	"github.com/xavierca1/evolution-relay/internal/entity"
)

type LabelResource struct{ resource }

func (r *LabelResource) Find(ctx context.Context) (map[string]any, error) {
	return r.service.Get(ctx, r.path("label", "findLabels"), nil)
}

func (r *LabelResource) Handle(ctx context.Context, label entity.Label) (map[string]any, error) {
	return r.service.Post(ctx, r.path("label", "handleLabel"), label.ToMap())
}
