package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xavierca1/evolution-relay/internal/entity"
	"github.com/xavierca1/evolution-relay/internal/infra/integration/evolution"
	"github.com/xavierca1/evolution-relay/internal/infra/mail"
	"github.com/xavierca1/evolution-relay/internal/infra/queue"
)

const releaseTimeout = 5 * time.Second

// DispatchMessageUseCase é o queue.DeliveryDispatcher do worker.
type DispatchMessageUseCase struct {
	Repo    DeliveryRepository
	Gateway Gateway
	Alerts  []AlertService
	Metrics MetricsRecorder
}

func NewDispatchMessageUseCase(
	repo DeliveryRepository,
	gateway Gateway,
	metrics MetricsRecorder,
	alerts ...AlertService,
) *DispatchMessageUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &DispatchMessageUseCase{
		Repo:    repo,
		Gateway: gateway,
		Alerts:  alerts,
		Metrics: metrics,
	}
}

// Execute só envia o que conseguir reivindicar (PENDING -> DISPATCHING). Entrega expirada, já
// finalizada ou reivindicada por outro worker é ignorada sem erro, e a mensagem recebe Ack.
func (uc *DispatchMessageUseCase) Execute(ctx context.Context, payload queue.DeliveryPayload) error {
	claimed, err := uc.Repo.Claim(ctx, payload.DeliveryID)
	if err != nil {
		return fmt.Errorf("falha ao reivindicar entrega %s: %w", payload.DeliveryID, err)
	}
	if !claimed {
		log.Printf("⏭️ Entrega %s ignorada: não está mais PENDING", payload.DeliveryID)
		return nil
	}

	resp, err := uc.Gateway.Send(ctx, payload.Instance, payload.Kind, payload.Body)
	if err != nil {
		if ctx.Err() != nil {
			// Shutdown no meio do envio: a entrega volta para PENDING e a mensagem para a fila.
			uc.release(payload.DeliveryID)
			return fmt.Errorf("entrega %s interrompida: %w", payload.DeliveryID, ctx.Err())
		}
		uc.fail(ctx, payload, err)
		return fmt.Errorf("entrega %s falhou: %w", payload.DeliveryID, err)
	}

	remoteID := remoteMessageID(resp)
	// a mensagem já saiu; o status precisa ser gravado mesmo com o ctx cancelado
	if err := uc.Repo.MarkSent(context.WithoutCancel(ctx), payload.DeliveryID, remoteID); err != nil {
		// reprocessar duplicaria o envio
		log.Printf("⚠️ CRITICAL: Entrega %s enviada (remote %s), mas falha ao gravar status: %v", payload.DeliveryID, remoteID, err)
	}

	uc.Metrics.DeliveryFinished(payload.Kind, entity.DeliverySent)
	return nil
}

func (uc *DispatchMessageUseCase) release(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	if err := uc.Repo.Release(ctx, id); err != nil {
		log.Printf("⚠️ Falha ao devolver entrega %s para PENDING: %v", id, err)
	}
}

func (uc *DispatchMessageUseCase) fail(ctx context.Context, payload queue.DeliveryPayload, err error) {
	code, message := 0, err.Error()
	if apiErr, ok := evolution.AsAPIError(err); ok {
		code, message = apiErr.Code, apiErr.Message
	}

	if markErr := uc.Repo.MarkFailed(ctx, payload.DeliveryID, code, message); markErr != nil {
		log.Printf("❌ Falha ao marcar entrega %s como FAILED: %v", payload.DeliveryID, markErr)
	}

	uc.Metrics.DeliveryFinished(payload.Kind, entity.DeliveryFailed)
	uc.Metrics.GatewayError(code)

	alert := mail.DeliveryFailureAlert{
		DeliveryID: payload.DeliveryID,
		Instance:   payload.Instance,
		Kind:       payload.Kind,
		Number:     recipientOf(payload.Body),
		Code:       code,
		Message:    message,
		FailedAt:   time.Now(),
	}
	for _, a := range uc.Alerts {
		if alertErr := a.SendDeliveryFailure(ctx, alert); alertErr != nil {
			log.Printf("⚠️ Falha ao enviar alerta da entrega %s: %v", payload.DeliveryID, alertErr)
		}
	}
}

// remoteMessageID lê key.id da resposta de envio; vazio quando o gateway não devolve.
func remoteMessageID(resp map[string]any) string {
	key, ok := resp["key"].(map[string]any)
	if !ok {
		return ""
	}
	id, _ := key["id"].(string)
	return id
}

func recipientOf(body map[string]any) string {
	number, _ := body["number"].(string)
	return number
}
