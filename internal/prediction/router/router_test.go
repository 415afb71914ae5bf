package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predictgate/predictgate/internal/monitoring"
	"github.com/predictgate/predictgate/internal/prediction/controller"
	"github.com/predictgate/predictgate/internal/prediction/model"
)

type noopDispatcher struct{}

func (noopDispatcher) MakeSavePredictions(identity model.Identity, batch model.Batch) model.Outcome {
	return model.Outcome{}
}

func (noopDispatcher) PredictWithShadow(batch model.Batch) model.Outcome {
	return model.Outcome{}
}

func (noopDispatcher) Stop() {}

type noopSink struct{}

func (noopSink) ObservePrediction(modelName, modelVersion string, value float64) {}

func (noopSink) RecordRequest(method, endpoint string, status int) {}

func (noopSink) ObserveLatency(endpoint string, seconds float64) {}

func (noopSink) PublishStaticInfo(info map[string]string) {}

func get(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestRegisterRoutesMountsMetricsForPrometheusSink(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	RegisterRoutes(engine, controller.NewController(noopDispatcher{}), monitoring.NewPrometheusSink("ml_api"))

	assert.Equal(t, http.StatusOK, get(t, engine, "/").Code)
	assert.Equal(t, http.StatusOK, get(t, engine, "/metrics").Code)
}

func TestRegisterRoutesSkipsMetricsForOtherSinks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	RegisterRoutes(engine, controller.NewController(noopDispatcher{}), noopSink{})

	assert.Equal(t, http.StatusOK, get(t, engine, "/").Code)
	assert.Equal(t, http.StatusNotFound, get(t, engine, "/metrics").Code)
}
