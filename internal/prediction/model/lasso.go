package model

// lassoVersion tracks the packaged regression model release.
const lassoVersion = "3.0.0"

// lassoSchema is the live model's expected input schema. Field names are the
// model's own (post-rename) names: 1stFlrSF, 2ndFlrSF, 3SsnPorch.
var lassoSchema = schema{
	{name: "BldgType", kind: kindString, nullable: false},
	{name: "CentralAir", kind: kindString, nullable: false},
	{name: "KitchenQual", kind: kindString, nullable: true},
	{name: "LotArea", kind: kindInteger, nullable: false},
	{name: "OverallQual", kind: kindInteger, nullable: false},
	{name: "YearBuilt", kind: kindInteger, nullable: true},
	{name: "GarageCars", kind: kindInteger, nullable: true},
	{name: "GrLivArea", kind: kindNumber, nullable: false},
	{name: "GarageArea", kind: kindNumber, nullable: true},
	{name: "TotalBsmtSF", kind: kindNumber, nullable: true},
	{name: "LotFrontage", kind: kindNumber, nullable: true},
	{name: "1stFlrSF", kind: kindNumber, nullable: true},
	{name: "2ndFlrSF", kind: kindNumber, nullable: true},
	{name: "3SsnPorch", kind: kindNumber, nullable: true},
}

// lassoRequired are the features a record must carry to be scorable; rows
// missing any of them are filtered before prediction.
var lassoRequired = []string{"GrLivArea", "OverallQual", "1stFlrSF"}

type coefficient struct {
	feature string
	weight  float64
}

// lassoCoefficients is the fitted coefficient vector for the regularized
// linear model, applied in a fixed order to the raw feature values.
var lassoCoefficients = []coefficient{
	{"GrLivArea", 54.2},
	{"OverallQual", 9310.0},
	{"1stFlrSF", 21.7},
	{"2ndFlrSF", 18.9},
	{"TotalBsmtSF", 26.3},
	{"GarageArea", 41.8},
	{"LotArea", 0.42},
	{"GarageCars", 4120.0},
	{"3SsnPorch", 12.5},
	{"YearBuilt", 103.0},
}

const lassoIntercept = -188450.0

type lassoRegressor struct{}

// NewLassoRegressor returns the live regularized linear regressor.
func NewLassoRegressor() Regressor {
	return &lassoRegressor{}
}

func (r *lassoRegressor) Version() string {
	return lassoVersion
}

func (r *lassoRegressor) Predict(batch Batch) Outcome {
	if errs := lassoSchema.validate(batch); errs != nil {
		return Outcome{Errors: errs, ModelVersion: lassoVersion}
	}

	scorable := filterScorable(batch, lassoRequired)
	predictions := make([]float64, 0, len(scorable))
	for _, record := range scorable {
		prediction := lassoIntercept
		for _, c := range lassoCoefficients {
			prediction += c.weight * featureValue(record, c.feature)
		}
		if prediction < 0 {
			prediction = 0
		}
		predictions = append(predictions, prediction)
	}
	return Outcome{Predictions: predictions, ModelVersion: lassoVersion}
}
