package model

// Regressor is the uniform predict contract both wrapped models satisfy.
// Implementations validate their own input schema; an Outcome carries either
// validation errors or predictions, never both.
type Regressor interface {
	Predict(batch Batch) Outcome
	Version() string
}

// filterScorable drops records that are missing (or carry null for) any of
// the features the model cannot score without. The returned count can be
// smaller than the submitted count; that is expected, not an error.
func filterScorable(batch Batch, required []string) Batch {
	scorable := make(Batch, 0, len(batch))
	for _, record := range batch {
		if hasRequiredFeatures(record, required) {
			scorable = append(scorable, record)
		}
	}
	return scorable
}

func hasRequiredFeatures(record Record, required []string) bool {
	for _, name := range required {
		value, present := record[name]
		if !present || value == nil || isNaN(value) {
			return false
		}
	}
	return true
}

// featureValue reads a numeric feature, tolerating the coercions the schema
// allows. Missing or non-numeric values read as 0 so optional features
// simply contribute nothing to the score.
func featureValue(record Record, name string) float64 {
	value, present := record[name]
	if !present || value == nil {
		return 0
	}
	f, ok := asNumber(value)
	if !ok {
		return 0
	}
	return f
}
