package predictions

import (
	"time"

	"gorm.io/gorm"
)

const (
	lassoTableName    = "regression_model_predictions"
	gradientTableName = "gradient_boosting_model_predictions"
	datetimeCaptured  = "DatetimeCaptured"
)

// LassoTable stores one prediction event of the live model per batch.
type LassoTable struct {
	Id               uint      `gorm:"primaryKey;autoIncrement"`
	UserId           string    `gorm:"size:36;not null"`
	DatetimeCaptured time.Time `gorm:"index"`
	ModelVersion     string    `gorm:"size:36;not null"`
	Inputs           string    `gorm:"type:json"`
	Outputs          string    `gorm:"type:json"`
}

func (LassoTable) TableName() string {
	return lassoTableName
}

func (LassoTable) BeforeCreate(tx *gorm.DB) (err error) {
	tx.Statement.SetColumn(datetimeCaptured, time.Now())
	return
}

// GradientBoostingTable stores one prediction event of the shadow model per
// batch. The shape mirrors LassoTable; the two collections are kept separate
// so live and shadow history can be compared side by side.
type GradientBoostingTable struct {
	Id               uint      `gorm:"primaryKey;autoIncrement"`
	UserId           string    `gorm:"size:36;not null"`
	DatetimeCaptured time.Time `gorm:"index"`
	ModelVersion     string    `gorm:"size:36;not null"`
	Inputs           string    `gorm:"type:json"`
	Outputs          string    `gorm:"type:json"`
}

func (GradientBoostingTable) TableName() string {
	return gradientTableName
}

func (GradientBoostingTable) BeforeCreate(tx *gorm.DB) (err error) {
	tx.Statement.SetColumn(datetimeCaptured, time.Now())
	return
}
