package model

// Identity enumerates the two models served by the gateway. The set is
// closed: dispatch happens via exhaustive switches so a new model type is a
// compile-visible change, never a silently missing map entry.
type Identity int

const (
	// Lasso is the live model; its output answers the caller.
	Lasso Identity = iota
	// GradientBoosting is the shadow model, run for comparison only.
	GradientBoosting
)

// Name returns the stable identifier used in metric labels and logs.
func (i Identity) Name() string {
	switch i {
	case Lasso:
		return "LASSO"
	case GradientBoosting:
		return "GRADIENT_BOOSTING"
	}
	return "UNKNOWN"
}

// DisplayName returns the human-readable model name.
func (i Identity) DisplayName() string {
	switch i {
	case Lasso:
		return "lasso"
	case GradientBoosting:
		return "gradient_boosting"
	}
	return "unknown"
}
