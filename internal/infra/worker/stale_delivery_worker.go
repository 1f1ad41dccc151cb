package worker

import (
	"context"
	"database/sql"
	"log"
	"time"
)

// ExpiredMessage vai para error_message das entregas que ficaram presas em PENDING ou DISPATCHING.
const ExpiredMessage = "delivery expired before dispatch"

// StaleDeliveryWorker marca como FAILED as entregas que passaram da janela sem sair da fila
// (mensagem perdida no broker, worker parado, publish que não chegou). Depois disso o Claim
// do dispatcher falha e a mensagem, se ainda estiver na fila, não é enviada.
type StaleDeliveryWorker struct {
	db               *sql.DB
	expirationWindow time.Duration
	tickInterval     time.Duration
}

func NewStaleDeliveryWorker(db *sql.DB, expirationWindow time.Duration) *StaleDeliveryWorker {
	return &StaleDeliveryWorker{
		db:               db,
		expirationWindow: expirationWindow,
		tickInterval:     1 * time.Minute,
	}
}

func (w *StaleDeliveryWorker) Start(ctx context.Context) {
	log.Printf("🕒 Stale Delivery Worker iniciado (%s window)", w.expirationWindow)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.ExpireStale(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Stale Delivery Worker encerrado")
			return
		case <-ticker.C:
			w.ExpireStale(ctx)
		}
	}
}

// ExpireStale devolve quantas entregas foram expiradas nesta passada.
func (w *StaleDeliveryWorker) ExpireStale(ctx context.Context) int {
	query := `
		UPDATE deliveries
		SET
			status = 'FAILED',
			error_code = 0,
			error_message = $1,
			updated_at = NOW()
		WHERE
			status IN ('PENDING', 'DISPATCHING')
			AND created_at < $2
		RETURNING id, kind, created_at
	`

	cutoff := time.Now().Add(-w.expirationWindow)
	rows, err := w.db.QueryContext(ctx, query, ExpiredMessage, cutoff)
	if err != nil {
		log.Printf("❌ Erro ao expirar entregas pendentes: %v", err)
		return 0
	}
	defer rows.Close()

	expiredCount := 0
	for rows.Next() {
		var id, kind string
		var createdAt time.Time

		if err := rows.Scan(&id, &kind, &createdAt); err != nil {
			log.Printf("⚠️ Erro ao escanear entrega expirada: %v", err)
			continue
		}

		log.Printf("⏱️ Entrega expirada: id=%s kind=%s elapsed=%s",
			id, kind, time.Since(createdAt).Round(time.Minute))
		expiredCount++
	}

	if expiredCount > 0 {
		log.Printf("✅ %d entrega(s) marcadas como FAILED por expiração", expiredCount)
	}
	return expiredCount
}
