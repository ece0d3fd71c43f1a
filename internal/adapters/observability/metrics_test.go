package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealership/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample so counters are non-zero
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body, _ := io.ReadAll(rr.Body)
	assert.True(t, strings.Contains(string(body), "dealership_http_requests_total"))
}

func TestObserveExternal(t *testing.T) {
	before := testutil.ToFloat64(observability.ExternalRequests.WithLabelValues("sentiment", "analyze", "0"))
	observability.ObserveExternal("sentiment", "analyze", 0, time.Millisecond)
	after := testutil.ToFloat64(observability.ExternalRequests.WithLabelValues("sentiment", "analyze", "0"))
	assert.Equal(t, before+1, after)
}

func TestObserveImport(t *testing.T) {
	before := testutil.ToFloat64(observability.ReviewsImported.WithLabelValues("failed"))
	observability.ObserveImport("failed", 3)
	assert.Equal(t, before+3, testutil.ToFloat64(observability.ReviewsImported.WithLabelValues("failed")))
}
