package predictions

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/predictgate/predictgate/internal/prediction/model"
	"github.com/predictgate/predictgate/pkg/infra"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Writer persists prediction events. Implementations must be safe for
// concurrent use from many requests at once; write isolation is delegated to
// the storage engine, one record per call, one transaction per record.
type Writer interface {
	Save(identity model.Identity, userId string, inputs model.Batch, outcome model.Outcome) error
	CountByModel(identity model.Identity) (int64, error)
}

// Repository implements Writer over a gorm MySQL connection.
type Repository struct {
	db     *gorm.DB
	dbName string
}

// NewRepository creates a prediction repository on the master connection.
func NewRepository(connection *infra.SQLConnection) (*Repository, error) {
	if connection == nil {
		return nil, errors.New("connection cannot be nil")
	}

	session, err := connection.GetConn()
	if err != nil {
		return nil, err
	}
	meta, err := connection.GetMeta()
	if err != nil {
		return nil, err
	}
	dbName := meta["db_name"].(string)

	return &Repository{
		db:     session.(*gorm.DB),
		dbName: dbName,
	}, nil
}

// Save serializes the submitted inputs (as received, pre-rename) and the
// predictions, and commits one row in the model's own table. It must only be
// called for outcomes without validation errors.
func (r *Repository) Save(identity model.Identity, userId string, inputs model.Batch, outcome model.Outcome) error {
	if outcome.Failed() {
		return errors.New("refusing to persist an outcome with validation errors")
	}
	if userId == "" {
		return errors.New("userId cannot be empty")
	}

	inputsJson, err := json.Marshal(inputs)
	if err != nil {
		return fmt.Errorf("failed to serialize inputs: %w", err)
	}
	outputsJson, err := json.Marshal(outcome.Predictions)
	if err != nil {
		return fmt.Errorf("failed to serialize predictions: %w", err)
	}

	var result *gorm.DB
	switch identity {
	case model.Lasso:
		result = r.db.Create(&LassoTable{
			UserId:       userId,
			ModelVersion: outcome.ModelVersion,
			Inputs:       string(inputsJson),
			Outputs:      string(outputsJson),
		})
	case model.GradientBoosting:
		result = r.db.Create(&GradientBoostingTable{
			UserId:       userId,
			ModelVersion: outcome.ModelVersion,
			Inputs:       string(inputsJson),
			Outputs:      string(outputsJson),
		})
	default:
		return fmt.Errorf("unknown model identity %d", identity)
	}
	if result.Error != nil {
		return result.Error
	}
	log.Debug().Str("model", identity.DisplayName()).Msg("saved prediction data")
	return nil
}

// CountByModel returns the number of persisted prediction events for one
// model identity.
func (r *Repository) CountByModel(identity model.Identity) (int64, error) {
	var count int64
	var result *gorm.DB
	switch identity {
	case model.Lasso:
		result = r.db.Model(&LassoTable{}).Count(&count)
	case model.GradientBoosting:
		result = r.db.Model(&GradientBoostingTable{}).Count(&count)
	default:
		return 0, fmt.Errorf("unknown model identity %d", identity)
	}
	return count, result.Error
}
