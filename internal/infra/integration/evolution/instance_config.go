package evolution

import "context"

// Configurações por instância: todas seguem o par <grupo>/set e <grupo>/find.

type SettingsResource struct{ resource }

func (r *SettingsResource) Set(ctx context.Context, settings map[string]any) (map[string]any, error) {
	return r.service.Post(ctx, r.path("settings", "set"), settings)
}

func (r *SettingsResource) Find(ctx context.Context) (map[string]any, error) {
	return r.service.Get(ctx, r.path("settings", "find"), nil)
}

type ProxyResource struct{ resource }

func (r *ProxyResource) Set(ctx context.Context, enabled bool, host, port, protocol, username, password string) (map[string]any, error) {
	body := map[string]any{
		"enabled":  enabled,
		"host":     host,
		"port":     port,
		"protocol": protocol,
	}
	setIfNotEmpty(body, "username", username)
	setIfNotEmpty(body, "password", password)
	return r.service.Post(ctx, r.path("proxy", "set"), body)
}

func (r *ProxyResource) Find(ctx context.Context) (map[string]any, error) {
	return r.service.Get(ctx, r.path("proxy", "find"), nil)
}

type WebSocketResource struct{ resource }

func (r *WebSocketResource) Set(ctx context.Context, enabled bool, events []string) (map[string]any, error) {
	if events == nil {
		events = []string{}
	}
	body := map[string]any{
		"websocket": map[string]any{
			"enabled": enabled,
			"events":  events,
		},
	}
	return r.service.Post(ctx, r.path("websocket", "set"), body)
}

func (r *WebSocketResource) Find(ctx context.Context) (map[string]any, error) {
	return r.service.Get(ctx, r.path("websocket", "find"), nil)
}
