package mail

import (
	"context"
	"fmt"
	"log"

	"github.com/xavierca1/evolution-relay/internal/infra/integration/evolution"
)

// TextSender é satisfeito por *evolution.MessageResource.
type TextSender interface {
	SendText(ctx context.Context, in evolution.SendTextInput) (map[string]any, error)
}

// WhatsAppSender manda o alerta de falha como texto para um número de operador, pela própria Evolution API.
type WhatsAppSender struct {
	client TextSender
	number string
}

func NewWhatsAppSender(client TextSender, operatorNumber string) *WhatsAppSender {
	return &WhatsAppSender{
		client: client,
		number: operatorNumber,
	}
}

func (s *WhatsAppSender) SendDeliveryFailure(ctx context.Context, alert DeliveryFailureAlert) error {
	if s.number == "" {
		log.Printf("⚠️ WhatsApp: número do operador não configurado, alerta de %s descartado", alert.DeliveryID)
		return nil
	}

	text := fmt.Sprintf("⚠️ Entrega %s (%s, instância %s) para %s falhou: %s (code %d)",
		alert.DeliveryID, alert.Kind, alert.Instance, alert.Number, alert.Message, alert.Code)

	if _, err := s.client.SendText(ctx, evolution.SendTextInput{Number: s.number, Text: text}); err != nil {
		return fmt.Errorf("whatsapp: falha ao alertar operador: %w", err)
	}
	return nil
}
