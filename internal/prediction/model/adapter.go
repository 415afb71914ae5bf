package model

// SecondaryVariablesToRename maps source field names to the names the live
// model's schema was trained with. The shadow model receives the batch
// unmodified; only the live path is translated.
var SecondaryVariablesToRename = map[string]string{
	"FirstFlrSF":     "1stFlrSF",
	"SecondFlrSF":    "2ndFlrSF",
	"ThreeSsnPortch": "3SsnPorch",
}

// Adapter wraps both regressors behind a single predict contract keyed by
// Identity. It performs input translation only; persistence and metrics are
// the dispatcher's business.
type Adapter struct {
	lasso    Regressor
	gradient Regressor
}

// NewAdapter builds an adapter over the packaged regressors.
func NewAdapter() *Adapter {
	return &Adapter{
		lasso:    NewLassoRegressor(),
		gradient: NewGradientBoostingRegressor(),
	}
}

// NewAdapterWith allows substituting regressors, used by tests.
func NewAdapterWith(lasso, gradient Regressor) *Adapter {
	return &Adapter{lasso: lasso, gradient: gradient}
}

// Predict routes the batch to the model selected by identity. The live model
// sees field names translated through the rename table; translation is a
// no-op for batches already using the target names.
func (a *Adapter) Predict(identity Identity, batch Batch) Outcome {
	switch identity {
	case Lasso:
		return a.lasso.Predict(RenameSecondaryVariables(batch))
	case GradientBoosting:
		return a.gradient.Predict(batch)
	}
	return Outcome{}
}

// Version reports the wrapped model's version without invoking it.
func (a *Adapter) Version(identity Identity) string {
	switch identity {
	case Lasso:
		return a.lasso.Version()
	case GradientBoosting:
		return a.gradient.Version()
	}
	return ""
}

// RenameSecondaryVariables returns a copy of the batch with legacy field
// names rewritten to the live model's schema. Input records are never
// mutated; they may be shared with the shadow path.
func RenameSecondaryVariables(batch Batch) Batch {
	renamed := make(Batch, 0, len(batch))
	for _, record := range batch {
		out := make(Record, len(record))
		for field, value := range record {
			if target, ok := SecondaryVariablesToRename[field]; ok {
				out[target] = value
			} else {
				out[field] = value
			}
		}
		renamed = append(renamed, out)
	}
	return renamed
}
