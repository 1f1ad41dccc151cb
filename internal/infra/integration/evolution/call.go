package evolution

import (
	"context"

	"github.com/xavierca1/evolution-relay/internal/entity"
)

type CallResource struct{ resource }

// Offer faz uma chamada fake (voz ou vídeo) para o número.
func (r *CallResource) Offer(ctx context.Context, call entity.Call) (map[string]any, error) {
	return r.service.Post(ctx, r.path("call", "offer"), call.ToMap())
}
