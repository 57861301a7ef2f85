package webhook

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/disasterconnect/disaster_coordination_system/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) *WebhookWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewWebhookWorker(nil, logger, cfg)
}

func TestProcessWebhookEvent_RetriesUntilDelivered(t *testing.T) {
	// Подготовка
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Первые две попытки отклоняются, третья принимается
		if atomic.AddInt32(&attempts, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := &config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := newTestWorker(cfg)
	payload := `{"id":"evt-1","type":"resource.assigned"}`

	// Действие
	worker.processWebhookEvent(context.Background(), WebhookEvent{ID: "evt-1", Type: EventResourceAssigned}, payload)

	// Проверки
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestProcessWebhookEvent_SignsPayloadWithSecret(t *testing.T) {
	// Подготовка
	var gotSignature string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := &config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "secret-key",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 1,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := newTestWorker(cfg)
	payload := `{"id":"evt-2","type":"incident.closed"}`

	// Действие
	worker.processWebhookEvent(context.Background(), WebhookEvent{ID: "evt-2", Type: EventIncidentClosed}, payload)

	// Проверки
	require.NotEmpty(t, gotSignature)
	assert.Equal(t, generateHMACSHA256(payload, "secret-key"), gotSignature)
}
