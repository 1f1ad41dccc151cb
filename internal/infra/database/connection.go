package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // Driver do Postgres
)

// NewDBConnection abre a conexão e testa o Ping
func NewDBConnection(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

const deliveriesSchema = `
	CREATE TABLE IF NOT EXISTS deliveries (
		id            UUID PRIMARY KEY,
		instance      TEXT NOT NULL,
		kind          TEXT NOT NULL,
		number        TEXT NOT NULL DEFAULT '',
		body          JSONB NOT NULL,
		status        TEXT NOT NULL,
		remote_id     TEXT,
		error_code    INTEGER,
		error_message TEXT,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)
`

// EnsureSchema cria a tabela deliveries se ainda não existir.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, deliveriesSchema)
	return err
}
