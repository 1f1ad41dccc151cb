package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/evolution-relay/internal/entity"
)

func newMockRepo(t *testing.T) (*DeliveryRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDeliveryRepository(db), mock
}

func TestDeliveryRepositoryCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	d, err := entity.NewDelivery("main", "sendText", "5511999999999", map[string]any{"text": "oi"})
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO deliveries").
		WithArgs(d.ID, "main", "sendText", "5511999999999", []byte(`{"text":"oi"}`), entity.DeliveryPending, d.CreatedAt, d.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), d))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliveryRepositoryCreateDuplicate(t *testing.T) {
	repo, mock := newMockRepo(t)
	d, _ := entity.NewDelivery("main", "sendText", "1", map[string]any{})

	mock.ExpectExec("INSERT INTO deliveries").WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), d)
	assert.ErrorIs(t, err, entity.ErrDeliveryAlreadyExists)
}

func TestDeliveryRepositoryFindByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "instance", "kind", "number", "body", "status",
		"remote_id", "error_code", "error_message", "created_at", "updated_at",
	}).AddRow("d-1", "main", "sendText", "5511", []byte(`{"text":"oi"}`), entity.DeliveryFailed,
		"", 400, "Bad Request", now, now)

	mock.ExpectQuery("FROM deliveries").WithArgs("d-1").WillReturnRows(rows)

	d, err := repo.FindByID(context.Background(), "d-1")

	require.NoError(t, err)
	assert.Equal(t, "main", d.Instance)
	assert.Equal(t, map[string]any{"text": "oi"}, d.Body)
	assert.Equal(t, entity.DeliveryFailed, d.Status)
	assert.Equal(t, 400, d.ErrorCode)
	assert.Equal(t, "Bad Request", d.ErrorMessage)
}

func TestDeliveryRepositoryFindByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("FROM deliveries").WithArgs("missing").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), "missing")

	assert.ErrorIs(t, err, entity.ErrDeliveryNotFound)
}

func TestDeliveryRepositoryMarkSent(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("UPDATE deliveries").
		WithArgs(entity.DeliverySent, "BAE5", "d-1", entity.DeliveryDispatching).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkSent(context.Background(), "d-1", "BAE5"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliveryRepositoryMarkFailed(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("UPDATE deliveries").
		WithArgs(entity.DeliveryFailed, 500, "Invalid JSON response from API", "d-1", entity.DeliveryPending, entity.DeliveryDispatching).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkFailed(context.Background(), "d-1", 500, "Invalid JSON response from API")
	assert.ErrorIs(t, err, entity.ErrDeliveryNotFound)
}

func TestDeliveryRepositoryClaim(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(`UPDATE deliveries\s+SET status = \$1, updated_at = NOW\(\)\s+WHERE id = \$2 AND status = \$3`).
		WithArgs(entity.DeliveryDispatching, "d-1", entity.DeliveryPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	claimed, err := repo.Claim(context.Background(), "d-1")

	require.NoError(t, err)
	assert.True(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliveryRepositoryClaimExpiredDelivery(t *testing.T) {
	repo, mock := newMockRepo(t)
	// já FAILED pela expiração: o WHERE status = PENDING não casa
	mock.ExpectExec("UPDATE deliveries").
		WithArgs(entity.DeliveryDispatching, "d-1", entity.DeliveryPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err := repo.Claim(context.Background(), "d-1")

	require.NoError(t, err)
	assert.False(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliveryRepositoryClaimError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("UPDATE deliveries").WillReturnError(errors.New("conn reset"))

	claimed, err := repo.Claim(context.Background(), "d-1")

	assert.EqualError(t, err, "conn reset")
	assert.False(t, claimed)
}

func TestDeliveryRepositoryRelease(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("UPDATE deliveries").
		WithArgs(entity.DeliveryPending, "d-1", entity.DeliveryDispatching).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Release(context.Background(), "d-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliveryRepositoryMarkSentAfterExpiration(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(`WHERE id = \$3 AND status = \$4`).
		WithArgs(entity.DeliverySent, "BAE5", "d-1", entity.DeliveryDispatching).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkSent(context.Background(), "d-1", "BAE5")

	assert.ErrorIs(t, err, entity.ErrDeliveryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliveryRepositoryExecError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("UPDATE deliveries").WillReturnError(errors.New("conn reset"))

	err := repo.MarkSent(context.Background(), "d-1", "")
	assert.EqualError(t, err, "conn reset")
}

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS deliveries").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
