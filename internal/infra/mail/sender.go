package mail

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

// Dialer é satisfeito por *gomail.Dialer.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

var failureTemplate = template.Must(template.New("failure").Parse(`Falha na entrega {{.DeliveryID}}

Instância: {{.Instance}}
Tipo:      {{.Kind}}
Número:    {{.Number}}
Código:    {{.Code}}
Erro:      {{.Message}}
Quando:    {{.FailedAt.Format "2006-01-02 15:04:05 MST"}}
`))

func NewEmailSender(host string, port int, user, password, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     "nao-responda@evolution-relay.local",
		To:       to,
		dialer:   gomail.NewDialer(host, port, user, password),
	}
}

// WithDialer troca o SMTP (testes).
func (s *EmailSender) WithDialer(d Dialer) *EmailSender {
	s.dialer = d
	return s
}

func (s *EmailSender) SendDeliveryFailure(ctx context.Context, alert DeliveryFailureAlert) error {
	if s.To == "" {
		return nil
	}

	var body bytes.Buffer
	if err := failureTemplate.Execute(&body, alert); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("⚠️ Entrega %s falhou (code %d)", alert.DeliveryID, alert.Code))
	m.SetBody("text/plain", body.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}
	return nil
}
