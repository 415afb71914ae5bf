package model

// gradientVersion tracks the packaged gradient boosting model release.
const gradientVersion = "0.2.0"

// gradientSchema is the shadow model's expected input schema; it uses the
// source (pre-rename) field names.
var gradientSchema = schema{
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
	{name: "FirstFlrSF", kind: kindNumber, nullable: true},
	{name: "SecondFlrSF", kind: kindNumber, nullable: true},
	{name: "ThreeSsnPortch", kind: kindNumber, nullable: true},
}

var gradientRequired = []string{"GrLivArea", "OverallQual", "TotalBsmtSF"}

// stump is one depth-1 regression tree in the boosted ensemble.
type stump struct {
	feature   string
	threshold float64
	left      float64 // value when feature <= threshold
	right     float64 // value when feature > threshold
}

const gradientBase = 163000.0

var gradientStumps = []stump{
	{feature: "OverallQual", threshold: 6, left: -42000, right: 38500},
	{feature: "GrLivArea", threshold: 1500, left: -21800, right: 24300},
	{feature: "TotalBsmtSF", threshold: 1000, left: -9600, right: 12100},
	{feature: "GarageArea", threshold: 450, left: -6900, right: 7800},
	{feature: "YearBuilt", threshold: 1975, left: -8200, right: 6400},
	{feature: "FirstFlrSF", threshold: 1200, left: -4100, right: 5300},
	{feature: "LotArea", threshold: 9500, left: -2600, right: 3100},
}

type gradientBoostingRegressor struct{}

// NewGradientBoostingRegressor returns the shadow boosted-trees regressor.
func NewGradientBoostingRegressor() Regressor {
	return &gradientBoostingRegressor{}
}

func (r *gradientBoostingRegressor) Version() string {
	return gradientVersion
}

func (r *gradientBoostingRegressor) Predict(batch Batch) Outcome {
	if errs := gradientSchema.validate(batch); errs != nil {
		return Outcome{Errors: errs, ModelVersion: gradientVersion}
	}

	scorable := filterScorable(batch, gradientRequired)
	predictions := make([]float64, 0, len(scorable))
	for _, record := range scorable {
		prediction := gradientBase
		for _, s := range gradientStumps {
			if featureValue(record, s.feature) > s.threshold {
				prediction += s.right
			} else {
				prediction += s.left
			}
		}
		if prediction < 0 {
			prediction = 0
		}
		predictions = append(predictions, prediction)
	}
	return Outcome{Predictions: predictions, ModelVersion: gradientVersion}
}
