package evolution

import "context"

type InstanceResource struct{ resource }

func (r *InstanceResource) Create(ctx context.Context, in CreateInstanceInput) (map[string]any, error) {
	return r.service.Post(ctx, "instance/create", in.Body())
}

// FetchInstances lista as instâncias; instanceName vazio traz todas.
func (r *InstanceResource) FetchInstances(ctx context.Context, instanceName string) (map[string]any, error) {
	query := map[string]string{}
	if instanceName != "" {
		query["instanceName"] = instanceName
	}
	return r.service.Get(ctx, "instance/fetchInstances", query)
}

// Connect devolve o QR code (ou pairing code quando number é informado).
func (r *InstanceResource) Connect(ctx context.Context, number string) (map[string]any, error) {
	query := map[string]string{}
	if number != "" {
		query["number"] = number
	}
	return r.service.Get(ctx, r.path("instance", "connect"), query)
}

func (r *InstanceResource) Restart(ctx context.Context) (map[string]any, error) {
	return r.service.Put(ctx, r.path("instance", "restart"), nil)
}

func (r *InstanceResource) ConnectionState(ctx context.Context) (map[string]any, error) {
	return r.service.Get(ctx, r.path("instance", "connectionState"), nil)
}

func (r *InstanceResource) Logout(ctx context.Context) (map[string]any, error) {
	return r.service.Delete(ctx, r.path("instance", "logout"), nil)
}

func (r *InstanceResource) Delete(ctx context.Context) (map[string]any, error) {
	return r.service.Delete(ctx, r.path("instance", "delete"), nil)
}

// SetPresence: available ou unavailable.
func (r *InstanceResource) SetPresence(ctx context.Context, presence string) (map[string]any, error) {
	return r.service.Post(ctx, r.path("instance", "setPresence"), map[string]any{"presence": presence})
}
