package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DeliveryDispatcher entrega uma mensagem da fila no gateway.
type DeliveryDispatcher interface {
	Execute(ctx context.Context, payload DeliveryPayload) error
}

type Worker struct {
	Channel    *amqp.Channel
	Dispatcher DeliveryDispatcher
}

func NewWorker(ch *amqp.Channel, dispatcher DeliveryDispatcher) *Worker {
	return &Worker{
		Channel:    ch,
		Dispatcher: dispatcher,
	}
}

// Start consome a fila até o ctx ser cancelado ou o canal fechar.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			w.handle(ctx, d)
		}
	}
}

// handle: Ack no sucesso, Nack sem requeue em qualquer falha (vai para a DLQ). Não há retentativa.
// A exceção é o shutdown: com o ctx cancelado a mensagem volta para a fila.
func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	if ctx.Err() != nil {
		log.Printf("↩️ [WORKER] Encerrando, devolvendo mensagem %s para a fila", d.MessageId)
		d.Nack(false, true)
		return
	}

	var payload DeliveryPayload
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		log.Printf("❌ [WORKER] JSON Inválido: %s", err)
		d.Nack(false, false)
		return
	}

	log.Printf("⚙️ [WORKER] Entregando %s (%s) na instância %s", payload.DeliveryID, payload.Kind, payload.Instance)

	if err := w.Dispatcher.Execute(ctx, payload); err != nil {
		if ctx.Err() != nil {
			log.Printf("↩️ [WORKER] Entrega %s interrompida pelo shutdown, voltando para a fila", payload.DeliveryID)
			d.Nack(false, true)
			return
		}
		log.Printf("❌ [WORKER] Falha na entrega %s: %s", payload.DeliveryID, err)
		d.Nack(false, false)
		return
	}

	log.Printf("✅ [WORKER] Entrega %s concluída", payload.DeliveryID)
	d.Ack(false)
}
