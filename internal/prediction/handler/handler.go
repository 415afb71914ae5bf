package handler

import (
	"github.com/predictgate/predictgate/internal/monitoring"
	"github.com/predictgate/predictgate/internal/prediction/model"
	"github.com/predictgate/predictgate/internal/repositories/sql/predictions"
	"github.com/predictgate/predictgate/pkg/metric"
	"github.com/rs/zerolog/log"
)

// anonymousUserId stands in for a real requester identity until the gateway
// grows user logins.
const anonymousUserId = "007"

// Dispatcher coordinates predict-and-persist for both models: the live model
// synchronously on the request path, the shadow model detached on the worker
// pool. It owns neither the writer nor the sink; both are injected and must
// tolerate concurrent use.
type Dispatcher interface {
	// MakeSavePredictions runs one model synchronously: predict, persist the
	// outcome (best-effort), emit model metrics.
	MakeSavePredictions(identity model.Identity, batch model.Batch) model.Outcome
	// PredictWithShadow answers from the live model and, on success, hands
	// the original batch to the shadow path without waiting for it.
	PredictWithShadow(batch model.Batch) model.Outcome
	// Stop drains the shadow worker pool.
	Stop()
}

type Config struct {
	ShadowModeActive bool
	ShadowWorkers    int
	ShadowQueueSize  int
}

type dispatcher struct {
	adapter   *model.Adapter
	writer    predictions.Writer
	sink      monitoring.Sink
	worker    *ShadowWorker
	shadowOn  bool
	requester string
}

// NewDispatcher wires the dispatcher and starts its shadow worker pool.
func NewDispatcher(adapter *model.Adapter, writer predictions.Writer, sink monitoring.Sink, cfg Config) Dispatcher {
	d := &dispatcher{
		adapter:   adapter,
		writer:    writer,
		sink:      sink,
		shadowOn:  cfg.ShadowModeActive,
		requester: anonymousUserId,
	}
	d.worker = NewShadowWorker(d.runShadow, cfg.ShadowWorkers, cfg.ShadowQueueSize)
	d.worker.Start()
	return d
}

func (d *dispatcher) MakeSavePredictions(identity model.Identity, batch model.Batch) model.Outcome {
	outcome := d.adapter.Predict(identity, batch)
	if outcome.Failed() {
		log.Warn().
			Str("model", identity.Name()).
			Int("invalidRecords", len(outcome.Errors)).
			Msg("errors during prediction")
		return outcome
	}

	// Persistence is best-effort on this path: a write failure is logged and
	// counted but the computed predictions are still returned.
	if err := d.writer.Save(identity, d.requester, batch, outcome); err != nil {
		metric.Incr(metric.PredictionPersistFailure, metric.BuildTag(
			metric.NewTag(metric.TagModelName, identity.Name()),
		))
		log.Error().Err(err).
			Str("model", identity.Name()).
			Msg("Failed to persist prediction data")
	}

	for _, prediction := range outcome.Predictions {
		d.sink.ObservePrediction(identity.Name(), outcome.ModelVersion, prediction)
	}

	log.Info().
		Str("model", identity.Name()).
		Str("version", outcome.ModelVersion).
		Int("predictions", len(outcome.Predictions)).
		Msg("Prediction results")
	return outcome
}

func (d *dispatcher) PredictWithShadow(batch model.Batch) model.Outcome {
	outcome := d.MakeSavePredictions(model.Lasso, batch)
	if outcome.Failed() {
		return outcome
	}

	if d.shadowOn {
		log.Debug().
			Str("model", model.GradientBoosting.DisplayName()).
			Msg("Calling shadow model asynchronously")
		d.worker.Enqueue(batch)
	}
	return outcome
}

// runShadow executes on the worker pool, detached from any request. The
// shadow model sees the original, un-renamed batch.
func (d *dispatcher) runShadow(batch model.Batch) {
	outcome := d.MakeSavePredictions(model.GradientBoosting, batch)
	if outcome.Failed() {
		metric.Incr(metric.ShadowExecutionFailure, nil)
		log.Warn().
			Int("invalidRecords", len(outcome.Errors)).
			Msg("Shadow model rejected batch")
	}
}

func (d *dispatcher) Stop() {
	d.worker.Stop()
}
