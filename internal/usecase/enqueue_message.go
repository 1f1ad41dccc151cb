package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/xavierca1/evolution-relay/internal/entity"
	"github.com/xavierca1/evolution-relay/internal/infra/queue"
)

const publishFailedMessage = "queue publish failed"

type EnqueueMessageUseCase struct {
	Repo            DeliveryRepository
	Queue           QueueProducerInterface
	Metrics         MetricsRecorder
	DefaultInstance string
}

func NewEnqueueMessageUseCase(
	repo DeliveryRepository,
	producer QueueProducerInterface,
	metrics MetricsRecorder,
	defaultInstance string,
) *EnqueueMessageUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &EnqueueMessageUseCase{
		Repo:            repo,
		Queue:           producer,
		Metrics:         metrics,
		DefaultInstance: defaultInstance,
	}
}

// Execute grava a entrega como PENDING e publica na fila. Se a publicação falhar, a entrega fica FAILED (code 0).
func (uc *EnqueueMessageUseCase) Execute(ctx context.Context, input MessageRequest) (*EnqueueOutput, error) {
	if validationErrors := input.Validate(); len(validationErrors) > 0 {
		return nil, validationFailure(validationErrors)
	}

	instance := pickInstance(input.TargetInstance(), uc.DefaultInstance)

	delivery, err := entity.NewDelivery(instance, input.Kind(), input.Recipient(), input.Body())
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	saga := NewSaga(
		Step{
			Name: "create_delivery",
			Do:   func(ctx context.Context) error { return uc.Repo.Create(ctx, delivery) },
			Undo: func(ctx context.Context) error {
				return uc.Repo.MarkFailed(ctx, delivery.ID, 0, publishFailedMessage)
			},
		},
		Step{
			Name: "publish_delivery",
			Do: func(ctx context.Context) error {
				return uc.Queue.PublishDelivery(ctx, queue.DeliveryPayload{
					DeliveryID: delivery.ID,
					Instance:   delivery.Instance,
					Kind:       delivery.Kind,
					Body:       delivery.Body,
				})
			},
		},
	)

	if err := saga.Run(ctx); err != nil {
		log.Printf("❌ Falha ao enfileirar %s (%s): %v", delivery.ID, delivery.Kind, err)
		return nil, &TechnicalError{
			Code:    CodeEnqueueFailed,
			Message: "failed to enqueue delivery: " + err.Error(),
			Err:     err,
		}
	}

	uc.Metrics.DeliveryEnqueued(delivery.Kind)
	log.Printf("📨 Entrega %s enfileirada (%s → %s)", delivery.ID, delivery.Kind, delivery.Instance)

	return &EnqueueOutput{
		ID:       delivery.ID,
		Instance: delivery.Instance,
		Kind:     delivery.Kind,
		Status:   delivery.Status,
	}, nil
}

type GetDeliveryUseCase struct {
	Repo DeliveryRepository
}

func NewGetDeliveryUseCase(repo DeliveryRepository) *GetDeliveryUseCase {
	return &GetDeliveryUseCase{Repo: repo}
}

func (uc *GetDeliveryUseCase) Execute(ctx context.Context, id string) (*DeliveryOutput, error) {
	d, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrDeliveryNotFound) {
			return nil, &DomainError{Code: CodeDeliveryNotFound, Message: "delivery not found: " + id}
		}
		return nil, &TechnicalError{Code: CodeDatabase, Message: "failed to load delivery: " + err.Error(), Err: err}
	}

	return &DeliveryOutput{
		ID:           d.ID,
		Instance:     d.Instance,
		Kind:         d.Kind,
		Number:       d.Number,
		Status:       d.Status,
		RemoteID:     d.RemoteID,
		ErrorCode:    d.ErrorCode,
		ErrorMessage: d.ErrorMessage,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}
