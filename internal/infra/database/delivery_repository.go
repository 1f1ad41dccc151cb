package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/lib/pq"

	"github.com/xavierca1/evolution-relay/internal/entity"
)

type DeliveryRepository struct {
	DB *sql.DB
}

func NewDeliveryRepository(db *sql.DB) *DeliveryRepository {
	return &DeliveryRepository{DB: db}
}

func (r *DeliveryRepository) Create(ctx context.Context, d *entity.Delivery) error {
	body, err := json.Marshal(d.Body)
	if err != nil {
		return fmt.Errorf("erro ao serializar body da entrega: %w", err)
	}

	query := `
		INSERT INTO deliveries (id, instance, kind, number, body, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.DB.ExecContext(ctx, query,
		d.ID,
		d.Instance,
		d.Kind,
		d.Number,
		body,
		d.Status,
		d.CreatedAt,
		d.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrDeliveryAlreadyExists
		}
		log.Printf("Erro crítico no banco: %v", err)
		return err
	}

	return nil
}

func (r *DeliveryRepository) FindByID(ctx context.Context, id string) (*entity.Delivery, error) {
	query := `
		SELECT id, instance, kind, number, body, status,
		       COALESCE(remote_id, ''), COALESCE(error_code, 0), COALESCE(error_message, ''),
		       created_at, updated_at
		FROM deliveries
		WHERE id = $1
	`

	var (
		d    entity.Delivery
		body []byte
	)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&d.ID,
		&d.Instance,
		&d.Kind,
		&d.Number,
		&body,
		&d.Status,
		&d.RemoteID,
		&d.ErrorCode,
		&d.ErrorMessage,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrDeliveryNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(body, &d.Body); err != nil {
		return nil, fmt.Errorf("body inválido na entrega %s: %w", id, err)
	}

	return &d, nil
}

// Claim é o único caminho para DISPATCHING: o UPDATE condicional garante que só um worker
// (e nunca depois da expiração) envia a entrega.
func (r *DeliveryRepository) Claim(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE deliveries
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`
	res, err := r.DB.ExecContext(ctx, query, entity.DeliveryDispatching, id, entity.DeliveryPending)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

func (r *DeliveryRepository) Release(ctx context.Context, id string) error {
	query := `
		UPDATE deliveries
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`
	_, err := r.DB.ExecContext(ctx, query, entity.DeliveryPending, id, entity.DeliveryDispatching)
	return err
}

func (r *DeliveryRepository) MarkSent(ctx context.Context, id, remoteID string) error {
	query := `
		UPDATE deliveries
		SET status = $1, remote_id = $2, error_code = NULL, error_message = NULL, updated_at = NOW()
		WHERE id = $3 AND status = $4
	`
	return r.exec(ctx, query, entity.DeliverySent, nullString(remoteID), id, entity.DeliveryDispatching)
}

func (r *DeliveryRepository) MarkFailed(ctx context.Context, id string, code int, message string) error {
	query := `
		UPDATE deliveries
		SET status = $1, error_code = $2, error_message = $3, updated_at = NOW()
		WHERE id = $4 AND status IN ($5, $6)
	`
	return r.exec(ctx, query, entity.DeliveryFailed, code, message, id, entity.DeliveryPending, entity.DeliveryDispatching)
}

func (r *DeliveryRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// inexistente ou já finalizada
		return entity.ErrDeliveryNotFound
	}
	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
