package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/predictgate/predictgate/internal/prediction/handler"
	"github.com/predictgate/predictgate/internal/prediction/model"
	"github.com/rs/zerolog/log"
)

// PredictionController maps HTTP requests onto the dispatcher and dispatcher
// outcomes back onto response payloads and status codes.
type PredictionController struct {
	dispatcher handler.Dispatcher
}

func NewController(dispatcher handler.Dispatcher) *PredictionController {
	return &PredictionController{dispatcher: dispatcher}
}

// PredictionResponse is the success payload. Errors is always null here; a
// failed validation returns the error map itself with a 400.
type PredictionResponse struct {
	Predictions []float64              `json:"predictions"`
	Version     string                 `json:"version"`
	Errors      model.ValidationErrors `json:"errors"`
}

// Health answers the liveness check; no model involvement.
func (c *PredictionController) Health(ctx *gin.Context) {
	log.Debug().Msg(`{"status": "ok"}`)
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// PredictRegression serves the live model and fans out to the shadow model.
func (c *PredictionController) PredictRegression(ctx *gin.Context) {
	batch, ok := bindBatch(ctx)
	if !ok {
		return
	}
	outcome := c.dispatcher.PredictWithShadow(batch)
	respond(ctx, outcome)
}

// PredictGradient serves the gradient boosting model directly, synchronously
// and without shadow fan-out; this endpoint is that model's own front door.
func (c *PredictionController) PredictGradient(ctx *gin.Context) {
	batch, ok := bindBatch(ctx)
	if !ok {
		return
	}
	outcome := c.dispatcher.MakeSavePredictions(model.GradientBoosting, batch)
	respond(ctx, outcome)
}

func bindBatch(ctx *gin.Context) (model.Batch, bool) {
	var batch model.Batch
	if err := ctx.ShouldBindJSON(&batch); err != nil {
		log.Warn().Err(err).Msg("Failed to parse prediction request body")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return nil, false
	}
	log.Debug().Int("records", len(batch)).Str("path", ctx.Request.URL.Path).Msg("Received prediction batch")
	return batch, true
}

func respond(ctx *gin.Context, outcome model.Outcome) {
	if outcome.Failed() {
		ctx.JSON(http.StatusBadRequest, outcome.Errors)
		return
	}
	ctx.JSON(http.StatusOK, PredictionResponse{
		Predictions: outcome.Predictions,
		Version:     outcome.ModelVersion,
		Errors:      nil,
	})
}
