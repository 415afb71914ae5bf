package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predictgate/predictgate/internal/prediction/model"
)

// stubDispatcher returns canned outcomes and records which entry point was
// used with which batch.
type stubDispatcher struct {
	outcome     model.Outcome
	shadowCalls []model.Batch
	directCalls []model.Identity
}

func (s *stubDispatcher) MakeSavePredictions(identity model.Identity, batch model.Batch) model.Outcome {
	s.directCalls = append(s.directCalls, identity)
	return s.outcome
}

func (s *stubDispatcher) PredictWithShadow(batch model.Batch) model.Outcome {
	s.shadowCalls = append(s.shadowCalls, batch)
	return s.outcome
}

func (s *stubDispatcher) Stop() {}

func newTestRouter(dispatcher *stubDispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	c := NewController(dispatcher)
	engine.GET("/", c.Health)
	engine.POST("/v1/predictions/regression", c.PredictRegression)
	engine.POST("/v1/predictions/gradient", c.PredictGradient)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestHealth(t *testing.T) {
	engine := newTestRouter(&stubDispatcher{})

	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status": "ok"}`, recorder.Body.String())
}

func TestPredictRegressionSuccessPayload(t *testing.T) {
	dispatcher := &stubDispatcher{outcome: model.Outcome{
		Predictions:  []float64{112800.0, 251400.0},
		ModelVersion: "3.0.0",
	}}
	engine := newTestRouter(dispatcher)

	recorder := postJSON(t, engine, "/v1/predictions/regression", `[{}, {}]`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t,
		`{"predictions": [112800.0, 251400.0], "version": "3.0.0", "errors": null}`,
		recorder.Body.String())
	assert.Len(t, dispatcher.shadowCalls, 1)
	assert.Empty(t, dispatcher.directCalls)
}

func TestPredictRegressionValidationFailureBody(t *testing.T) {
	dispatcher := &stubDispatcher{outcome: model.Outcome{
		Errors: model.ValidationErrors{
			"33": {"BldgType": []string{"Not a valid string."}},
		},
		ModelVersion: "3.0.0",
	}}
	engine := newTestRouter(dispatcher)

	recorder := postJSON(t, engine, "/v1/predictions/regression", `[{}]`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"33": {"BldgType": ["Not a valid string."]}}`, recorder.Body.String())
}

func TestPredictGradientUsesDirectPath(t *testing.T) {
	dispatcher := &stubDispatcher{outcome: model.Outcome{
		Predictions:  []float64{198300.0},
		ModelVersion: "0.2.0",
	}}
	engine := newTestRouter(dispatcher)

	recorder := postJSON(t, engine, "/v1/predictions/gradient", `[{}]`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, dispatcher.directCalls, 1)
	assert.Equal(t, model.GradientBoosting, dispatcher.directCalls[0])
	assert.Empty(t, dispatcher.shadowCalls)
}

func TestMalformedBodyRejected(t *testing.T) {
	dispatcher := &stubDispatcher{}
	engine := newTestRouter(dispatcher)

	for _, body := range []string{`{"not": "a list"}`, `[{`, ``} {
		recorder := postJSON(t, engine, "/v1/predictions/regression", body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error": "invalid request payload"}`, recorder.Body.String())
	}
	assert.Empty(t, dispatcher.shadowCalls)
}

func TestEmptyBatchRoundTrip(t *testing.T) {
	dispatcher := &stubDispatcher{outcome: model.Outcome{
		Predictions:  []float64{},
		ModelVersion: "3.0.0",
	}}
	engine := newTestRouter(dispatcher)

	recorder := postJSON(t, engine, "/v1/predictions/regression", `[]`)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var payload PredictionResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Empty(t, payload.Predictions)
	assert.Equal(t, "3.0.0", payload.Version)
	assert.Nil(t, payload.Errors)
}
