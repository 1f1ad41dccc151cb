package evolution

import "context"

// TemplateResource só funciona em instâncias WHATSAPP-BUSINESS (Cloud API).
type TemplateResource struct{ resource }

func (r *TemplateResource) Create(ctx context.Context, template map[string]any) (map[string]any, error) {
	return r.service.Post(ctx, r.path("template", "create"), template)
}

func (r *TemplateResource) Find(ctx context.Context) (map[string]any, error) {
	return r.service.Get(ctx, r.path("template", "find"), nil)
}
