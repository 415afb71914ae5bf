package handler

import (
	"sync"

	"github.com/predictgate/predictgate/internal/prediction/model"
	"github.com/predictgate/predictgate/pkg/metric"
	"github.com/rs/zerolog/log"
)

// ShadowWorker runs shadow predictions on a small pool of goroutines fed by
// a bounded queue. Jobs are never cancelled by the request that enqueued
// them; they run to completion or failure on their own schedule, and their
// failures stay inside the pool.
type ShadowWorker struct {
	execute  func(batch model.Batch)
	workers  int
	jobQueue chan model.Batch
	stopOnce sync.Once
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewShadowWorker creates a worker pool. execute is invoked once per
// enqueued batch.
func NewShadowWorker(execute func(batch model.Batch), numWorkers, queueSize int) *ShadowWorker {
	if numWorkers <= 0 {
		numWorkers = 2
	}
	if queueSize <= 0 {
		queueSize = 100
	}
	return &ShadowWorker{
		execute:  execute,
		workers:  numWorkers,
		jobQueue: make(chan model.Batch, queueSize),
		stopChan: make(chan struct{}),
	}
}

// Start launches the pool.
func (w *ShadowWorker) Start() {
	log.Info().Int("workers", w.workers).Msg("Starting shadow worker pool")
	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.workerLoop(i)
	}
}

// Stop drains the pool. In-flight jobs finish; queued jobs are abandoned.
func (w *ShadowWorker) Stop() {
	w.stopOnce.Do(func() {
		log.Info().Msg("Stopping shadow worker pool")
		close(w.stopChan)
		w.wg.Wait()
		log.Info().Msg("Shadow worker pool stopped")
	})
}

// Enqueue hands a batch to the pool without blocking. When the queue is full
// the job is dropped and logged; the caller's response is never held up by
// shadow backpressure.
func (w *ShadowWorker) Enqueue(batch model.Batch) bool {
	select {
	case w.jobQueue <- batch:
		metric.Incr(metric.ShadowDispatchCount, nil)
		return true
	default:
		metric.Incr(metric.ShadowDispatchDropped, nil)
		log.Warn().
			Int("queueCapacity", cap(w.jobQueue)).
			Msg("Shadow job queue full, dropping shadow prediction")
		return false
	}
}

func (w *ShadowWorker) workerLoop(workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Debug().Int("workerID", workerID).Msg("Shadow worker stopping")
			return
		case batch := <-w.jobQueue:
			w.safeExecute(batch)
		}
	}
}

// safeExecute contains panics so one bad batch cannot take down the pool.
func (w *ShadowWorker) safeExecute(batch model.Batch) {
	defer func() {
		if r := recover(); r != nil {
			metric.Incr(metric.ShadowExecutionFailure, nil)
			log.Error().Interface("panic", r).Msg("Recovered from panic in shadow prediction")
		}
	}()
	w.execute(batch)
}
