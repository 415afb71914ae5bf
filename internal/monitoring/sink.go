package monitoring

import (
	"net/http"
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Sink records operational metrics. Every operation is side-effect-only and
// never fails the caller; backend problems are logged and swallowed.
type Sink interface {
	// ObservePrediction records one prediction value into the model's value
	// histogram and sets the live gauge to that value.
	ObservePrediction(modelName, modelVersion string, value float64)
	// RecordRequest increments the request counter for one served call.
	RecordRequest(method, endpoint string, status int)
	// ObserveLatency records one request duration in seconds.
	ObserveLatency(endpoint string, seconds float64)
	// PublishStaticInfo sets process-lifetime descriptive key/value pairs.
	// Idempotent when called again with the same values.
	PublishStaticInfo(info map[string]string)
}

// PrometheusSink implements Sink over a dedicated prometheus registry.
type PrometheusSink struct {
	appName  string
	registry *prometheus.Registry

	predictionTracker *prometheus.HistogramVec
	predictionGauge   *prometheus.GaugeVec
	requestCount      *prometheus.CounterVec
	requestLatency    *prometheus.HistogramVec

	infoMut  sync.Mutex
	infoVec  *prometheus.GaugeVec
	infoKeys []string
}

// NewPrometheusSink builds the sink and registers its collectors on a fresh
// registry. appName becomes the app_name label on every series.
func NewPrometheusSink(appName string) *PrometheusSink {
	registry := prometheus.NewRegistry()

	s := &PrometheusSink{
		appName:  appName,
		registry: registry,
		predictionTracker: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "house_price_prediction_dollars",
				Help:    "ML Model Prediction on House Price",
				Buckets: prometheus.ExponentialBuckets(25000, 1.6, 12),
			},
			[]string{"app_name", "model_name", "model_version"},
		),
		predictionGauge: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "house_price_gauge_dollars",
				Help: "ML Model Prediction on House Price for min max calcs",
			},
			[]string{"app_name", "model_name", "model_version"},
		),
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_request_count",
				Help: "App Request Count",
			},
			[]string{"app_name", "method", "endpoint", "http_status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_latency_seconds",
				Help:    "Request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"app_name", "endpoint"},
		),
	}

	for _, collector := range []prometheus.Collector{
		s.predictionTracker,
		s.predictionGauge,
		s.requestCount,
		s.requestLatency,
	} {
		if err := registry.Register(collector); err != nil {
			log.Error().Err(err).Msg("Failed to register metrics collector")
		}
	}
	return s
}

func (s *PrometheusSink) ObservePrediction(modelName, modelVersion string, value float64) {
	labels := prometheus.Labels{
		"app_name":      s.appName,
		"model_name":    modelName,
		"model_version": modelVersion,
	}
	s.predictionTracker.With(labels).Observe(value)
	s.predictionGauge.With(labels).Set(value)
}

func (s *PrometheusSink) RecordRequest(method, endpoint string, status int) {
	s.requestCount.With(prometheus.Labels{
		"app_name":    s.appName,
		"method":      method,
		"endpoint":    endpoint,
		"http_status": statusText(status),
	}).Inc()
}

func (s *PrometheusSink) ObserveLatency(endpoint string, seconds float64) {
	s.requestLatency.With(prometheus.Labels{
		"app_name": s.appName,
		"endpoint": endpoint,
	}).Observe(seconds)
}

// PublishStaticInfo exposes descriptive key/value pairs as a constant-1
// gauge (model_version_details) whose labels carry the values. The label set
// is fixed by the first call; later calls re-set the same series.
func (s *PrometheusSink) PublishStaticInfo(info map[string]string) {
	s.infoMut.Lock()
	defer s.infoMut.Unlock()

	if s.infoVec == nil {
		keys := make([]string, 0, len(info))
		for key := range info {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		vec := prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "model_version_details",
				Help: "Capture model version information",
			},
			keys,
		)
		if err := s.registry.Register(vec); err != nil {
			log.Error().Err(err).Msg("Failed to register static info metric")
			return
		}
		s.infoVec = vec
		s.infoKeys = keys
	}

	labels := make(prometheus.Labels, len(s.infoKeys))
	for _, key := range s.infoKeys {
		labels[key] = info[key]
	}
	s.infoVec.With(labels).Set(1)
}

// Handler returns the exposition handler for GET /metrics.
func (s *PrometheusSink) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, used by tests.
func (s *PrometheusSink) Registry() *prometheus.Registry {
	return s.registry
}
