package monitoring

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservePrediction(t *testing.T) {
	sink := NewPrometheusSink("ml_api")

	sink.ObservePrediction("LASSO", "3.0.0", 182000)
	sink.ObservePrediction("LASSO", "3.0.0", 97000)
	sink.ObservePrediction("GRADIENT_BOOSTING", "0.2.0", 203500)

	count := testutil.CollectAndCount(sink.predictionTracker, "house_price_prediction_dollars")
	assert.Equal(t, 2, count, "one histogram series per model")

	// The gauge holds the most recent value per model series.
	gauge := sink.predictionGauge.WithLabelValues("ml_api", "LASSO", "3.0.0")
	assert.Equal(t, 97000.0, testutil.ToFloat64(gauge))
}

func TestRecordRequestLabels(t *testing.T) {
	sink := NewPrometheusSink("ml_api")

	sink.RecordRequest(http.MethodPost, "/v1/predictions/regression", http.StatusOK)
	sink.RecordRequest(http.MethodPost, "/v1/predictions/regression", http.StatusOK)
	sink.RecordRequest(http.MethodPost, "/v1/predictions/regression", http.StatusBadRequest)

	ok := sink.requestCount.WithLabelValues("ml_api", "POST", "/v1/predictions/regression", "200")
	bad := sink.requestCount.WithLabelValues("ml_api", "POST", "/v1/predictions/regression", "400")
	assert.Equal(t, 2.0, testutil.ToFloat64(ok))
	assert.Equal(t, 1.0, testutil.ToFloat64(bad))
}

func TestPublishStaticInfoIsIdempotent(t *testing.T) {
	sink := NewPrometheusSink("ml_api")
	info := map[string]string{
		"live_model":   "LASSO",
		"live_version": "3.0.0",
	}

	sink.PublishStaticInfo(info)
	sink.PublishStaticInfo(info)

	count := testutil.CollectAndCount(sink.infoVec, "model_version_details")
	assert.Equal(t, 1, count)
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.infoVec.WithLabelValues("LASSO", "3.0.0")))
}

func TestMetricsExposition(t *testing.T) {
	sink := NewPrometheusSink("ml_api")
	sink.ObservePrediction("LASSO", "3.0.0", 182000)
	sink.PublishStaticInfo(map[string]string{"live_model": "LASSO"})

	recorder := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/metrics", nil)
	require.NoError(t, err)
	sink.Handler().ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "house_price_prediction_dollars")
	assert.Contains(t, body, "house_price_gauge_dollars")
	assert.Contains(t, body, "model_version_details")
}

func TestRequestMetricsMiddleware(t *testing.T) {
	sink := NewPrometheusSink("ml_api")

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestMetrics(sink))
	engine.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req, err := http.NewRequest(http.MethodGet, "/ping", nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	counter := sink.requestCount.WithLabelValues("ml_api", "GET", "/ping", "204")
	assert.Equal(t, 1.0, testutil.ToFloat64(counter))

	// One latency observation for the endpoint.
	assert.Equal(t, 1, testutil.CollectAndCount(sink.requestLatency, "http_request_latency_seconds"))
}

func TestExpositionOmitsEmptySeries(t *testing.T) {
	sink := NewPrometheusSink("ml_api")

	recorder := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/metrics", nil)
	require.NoError(t, err)
	sink.Handler().ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	// Vectors with no observed label sets export nothing.
	assert.False(t, strings.Contains(recorder.Body.String(), "house_price_gauge_dollars{"))
}
