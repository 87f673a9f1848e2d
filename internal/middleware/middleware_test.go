package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(Logger(logger))
	r.Use(Metrics)
	r.Get("/api/status/{order_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/status/1", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Contains(t, buf.String(), "status=418")
	assert.Contains(t, buf.String(), "path=/api/status/1")
}

func TestResponseWriter_Hijack(t *testing.T) {
	rw := wrapResponseWriter(httptest.NewRecorder())

	_, _, err := rw.Hijack()
	require.Error(t, err)
	assert.NotNil(t, rw.Unwrap())
}

func TestMetrics_RoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/api/orders/{order_id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/{order_id}", RoutePattern(r))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/orders/42", nil))

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/orders/{order_id}", "200"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/orders/43", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/orders/{order_id}", "200"))
	assert.Equal(t, before+1, after)

	assert.Equal(t, "unknown", RoutePattern(httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestMiddleware_WebsocketUpgrade(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	upgrader := websocket.Upgrader{}
	upgraded := make(chan struct{})

	// Логгер внутри, чтобы запись в buf случилась до инкремента счетчика
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Use(Logger(logger))
	r.Get("/ws/orders", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if !assert.NoError(t, err) {
			return
		}
		conn.Close()
		close(upgraded)
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	before := testutil.ToFloat64(wsUpgradesTotal.WithLabelValues("/ws/orders"))

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/orders", nil)
	require.NoError(t, err)
	conn.Close()
	<-upgraded

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(wsUpgradesTotal.WithLabelValues("/ws/orders")) == before+1
	}, time.Second, 10*time.Millisecond)
	assert.Contains(t, buf.String(), "status=101")
}
