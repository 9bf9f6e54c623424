package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New()
	m.Experiment("checkerboard", Success)
	m.Experiment("checkerboard", Success)
	m.Experiment("cluster-holdout", Failure)
	m.AUC("checkerboard", "0", 0.75)
	m.Fit("checkerboard", 200*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.prometheus.Experiments.WithLabelValues("checkerboard", Success)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.prometheus.Experiments.WithLabelValues("cluster-holdout", Failure)))
	assert.Equal(t, 0.75, testutil.ToFloat64(m.prometheus.AUC.WithLabelValues("checkerboard", "0")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "prospect_auc"))
	assert.True(t, strings.Contains(rec.Body.String(), "prospect_fit_seconds"))
}
