package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictEmptyBatch(t *testing.T) {
	adapter := NewAdapter()

	for _, identity := range []Identity{Lasso, GradientBoosting} {
		outcome := adapter.Predict(identity, Batch{})
		assert.False(t, outcome.Failed())
		assert.Empty(t, outcome.Predictions)
		assert.NotEmpty(t, outcome.ModelVersion)
	}
}

func TestOutcomeExclusivity(t *testing.T) {
	adapter := NewAdapter()

	success := adapter.Predict(GradientBoosting, gradientBatch(3))
	assert.Nil(t, success.Errors)
	assert.Len(t, success.Predictions, 3)

	bad := gradientBatch(3)
	bad[1]["BldgType"] = 7
	failure := adapter.Predict(GradientBoosting, bad)
	assert.True(t, failure.Failed())
	assert.Nil(t, failure.Predictions)
}

func TestRenameIsIdempotentForLiveModel(t *testing.T) {
	adapter := NewAdapter()

	legacy := gradientBatch(4)
	preRenamed := RenameSecondaryVariables(legacy)

	fromLegacy := adapter.Predict(Lasso, legacy)
	fromRenamed := adapter.Predict(Lasso, preRenamed)

	require.False(t, fromLegacy.Failed())
	assert.Equal(t, fromRenamed, fromLegacy)
}

func TestRenameDoesNotMutateInput(t *testing.T) {
	batch := gradientBatch(2)
	_ = RenameSecondaryVariables(batch)

	for _, record := range batch {
		assert.Contains(t, record, "FirstFlrSF")
		assert.NotContains(t, record, "1stFlrSF")
	}
}

func TestRowsMissingRequiredFeaturesAreFiltered(t *testing.T) {
	adapter := NewAdapter()

	batch := gradientBatch(3)
	delete(batch[1], "TotalBsmtSF")

	outcome := adapter.Predict(GradientBoosting, batch)
	require.False(t, outcome.Failed())
	assert.Len(t, outcome.Predictions, 2)
}

func TestPredictionsAreNonNegative(t *testing.T) {
	adapter := NewAdapter()

	// Tiny house with the lowest qualities should floor at zero rather than
	// go negative on the live model's linear score.
	batch := Batch{{
		"BldgType":    "1Fam",
		"CentralAir":  "N",
		"LotArea":     float64(100),
		"OverallQual": float64(1),
		"GrLivArea":   1.0,
		"1stFlrSF":    1.0,
	}}
	outcome := adapter.Predict(Lasso, batch)
	require.False(t, outcome.Failed())
	require.Len(t, outcome.Predictions, 1)
	assert.GreaterOrEqual(t, outcome.Predictions[0], 0.0)
}

func TestVersionReporting(t *testing.T) {
	adapter := NewAdapter()
	assert.Equal(t, "3.0.0", adapter.Version(Lasso))
	assert.Equal(t, "0.2.0", adapter.Version(GradientBoosting))
}

func TestIdentityNames(t *testing.T) {
	assert.Equal(t, "LASSO", Lasso.Name())
	assert.Equal(t, "GRADIENT_BOOSTING", GradientBoosting.Name())
	assert.Equal(t, "lasso", Lasso.DisplayName())
	assert.Equal(t, "gradient_boosting", GradientBoosting.DisplayName())
}
