package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// PENDING -> DISPATCHING -> SENT | FAILED. PENDING e DISPATCHING também podem ir direto para FAILED
// (publish que falhou, expiração). DISPATCHING volta para PENDING só quando o worker é interrompido.
const (
	DeliveryPending     = "PENDING"
	DeliveryDispatching = "DISPATCHING"
	DeliverySent        = "SENT"
	DeliveryFailed      = "FAILED"
)

// Delivery é uma mensagem de saída aceita pelo relay e ainda (ou já) entregue ao gateway.
type Delivery struct {
	ID           string         `json:"id"`
	Instance     string         `json:"instance"`
	Kind         string         `json:"kind"`
	Number       string         `json:"number"`
	Body         map[string]any `json:"body"`
	Status       string         `json:"status"`
	RemoteID     string         `json:"remote_id,omitempty"`
	ErrorCode    int            `json:"error_code,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type DeliveryRepositoryInterface interface {
	Create(ctx context.Context, d *Delivery) error
	FindByID(ctx context.Context, id string) (*Delivery, error)
	// Claim passa PENDING -> DISPATCHING; false quando a entrega já saiu de PENDING (ou não existe).
	Claim(ctx context.Context, id string) (bool, error)
	// Release devolve uma entrega DISPATCHING para PENDING.
	Release(ctx context.Context, id string) error
	// MarkSent e MarkFailed só valem para entregas ainda abertas; senão ErrDeliveryNotFound.
	MarkSent(ctx context.Context, id, remoteID string) error
	MarkFailed(ctx context.Context, id string, code int, message string) error
}

// Factory
func NewDelivery(instance, kind, number string, body map[string]any) (*Delivery, error) {
	now := time.Now()
	d := &Delivery{
		ID:        uuid.New().String(),
		Instance:  instance,
		Kind:      kind,
		Number:    number,
		Body:      body,
		Status:    DeliveryPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Delivery) Validate() error {
	if d.Instance == "" {
		return errors.New("instance is required")
	}
	if d.Kind == "" {
		return errors.New("kind is required")
	}
	if d.Body == nil {
		return errors.New("body is required")
	}
	return nil
}

var (
	ErrDeliveryNotFound      = errors.New("delivery not found")
	ErrDeliveryAlreadyExists = errors.New("delivery already exists")
)
