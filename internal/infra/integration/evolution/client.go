package evolution

import "net/url"

// Client agrupa os recursos da Evolution API sobre um único Service.
// Todos os recursos compartilham o mesmo Service; nenhum guarda estado de conexão próprio.
type Client struct {
	Service      *Service
	InstanceName string

	Chat      *ChatResource
	Group     *GroupResource
	Message   *MessageResource
	Instance  *InstanceResource
	Call      *CallResource
	Label     *LabelResource
	Profile   *ProfileResource
	WebSocket *WebSocketResource
	Proxy     *ProxyResource
	Settings  *SettingsResource
	Template  *TemplateResource
}

func NewClient(service *Service, instanceName string) *Client {
	r := resource{service: service, instance: instanceName}

	return &Client{
		Service:      service,
		InstanceName: instanceName,

		Chat:      &ChatResource{r},
		Group:     &GroupResource{r},
		Message:   &MessageResource{r},
		Instance:  &InstanceResource{r},
		Call:      &CallResource{r},
		Label:     &LabelResource{r},
		Profile:   &ProfileResource{r},
		WebSocket: &WebSocketResource{r},
		Proxy:     &ProxyResource{r},
		Settings:  &SettingsResource{r},
		Template:  &TemplateResource{r},
	}
}

// WithInstance devolve um Client para outra instância, reaproveitando o mesmo Service.
func (c *Client) WithInstance(instanceName string) *Client {
	if instanceName == "" || instanceName == c.InstanceName {
		return c
	}
	return NewClient(c.Service, instanceName)
}

type resource struct {
	service  *Service
	instance string
}

// path monta "<group>/<action>/<instance>".
func (r resource) path(group, action string) string {
	return group + "/" + action + "/" + url.PathEscape(r.instance)
}

// groupPath é usado nos endpoints de grupo que recebem groupJid na query mesmo em POST.
func (r resource) groupPath(action, groupJid string) string {
	return r.path("group", action) + "?groupJid=" + url.QueryEscape(groupJid)
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
