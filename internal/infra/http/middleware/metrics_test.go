package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/messages/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/messages/{id}", "404"))

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/messages/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/messages/{id}", "404"))
	assert.Equal(t, 2.0, after-before)
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()

	enqueued := testutil.ToFloat64(deliveriesEnqueued.WithLabelValues("sendText"))
	failed := testutil.ToFloat64(deliveriesTotal.WithLabelValues("sendText", "FAILED"))
	transport := testutil.ToFloat64(integrationErrors.WithLabelValues("0"))

	rec.DeliveryEnqueued("sendText")
	rec.DeliveryFinished("sendText", "FAILED")
	rec.GatewayError(0)

	assert.Equal(t, enqueued+1, testutil.ToFloat64(deliveriesEnqueued.WithLabelValues("sendText")))
	assert.Equal(t, failed+1, testutil.ToFloat64(deliveriesTotal.WithLabelValues("sendText", "FAILED")))
	assert.Equal(t, transport+1, testutil.ToFloat64(integrationErrors.WithLabelValues("0")))
}
