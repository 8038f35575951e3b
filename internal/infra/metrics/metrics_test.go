package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backoffice/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMetrics_CountsOutcomes(t *testing.T) {
	registry := prometheus.NewRegistry()
	recorder := NewAuthMetrics(registry).(*authRecorder)

	recorder.LoginAttempt(service.OutcomeSuccess)
	recorder.LoginAttempt(service.OutcomeInvalidCredentials)
	recorder.LoginAttempt(service.OutcomeInvalidCredentials)
	recorder.RefreshAttempt(service.OutcomeInvalidToken)
	recorder.SessionsEvicted(2)
	recorder.SessionsEvicted(0)
	recorder.SessionsSwept(3)

	assert.InDelta(t, 1, testutil.ToFloat64(recorder.loginAttempts.WithLabelValues(service.OutcomeSuccess)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(recorder.loginAttempts.WithLabelValues(service.OutcomeInvalidCredentials)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.refreshAttempts.WithLabelValues(service.OutcomeInvalidToken)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(recorder.sessionsEvicted), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(recorder.sessionsSwept), 0)
}

func TestHTTPMetrics_StartAndFinish(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewHTTPMetrics(registry)

	done := m.Start()
	assert.InDelta(t, 1, testutil.ToFloat64(m.inFlight), 0)

	done(http.MethodPost, "/auth/login", http.StatusOK)
	assert.InDelta(t, 0, testutil.ToFloat64(m.inFlight), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodPost, "/auth/login", "200")), 0)
}

func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	registry := NewRegistry()
	NewAuthMetrics(registry).LoginAttempt(service.OutcomeLocked)

	rec := httptest.NewRecorder()
	Handler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `backoffice_login_attempts_total{outcome="locked"} 1`))
}
