package model

// Record is a single feature record as submitted by the caller. Values are
// whatever encoding/json produced: string, float64, bool or nil.
type Record map[string]interface{}

// Batch is the ordered sequence of records submitted in one call. It is
// treated as immutable once received; transformations copy.
type Batch []Record

// ValidationErrors maps record index (as a string key) to field name to the
// list of violation messages for that field.
type ValidationErrors map[string]map[string][]string

// Outcome is the result of one model invocation. Errors and Predictions are
// mutually exclusive: exactly one of them is set, except that an empty batch
// yields an empty (non-nil) Predictions slice.
type Outcome struct {
	Errors       ValidationErrors
	Predictions  []float64
	ModelVersion string
}

// Failed reports whether the invocation was rejected by validation.
func (o Outcome) Failed() bool {
	return len(o.Errors) > 0
}
