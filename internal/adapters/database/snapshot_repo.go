package database

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"allweather.app/internal/ports"
	"allweather.app/pkg/errors"
)

// ConditionModel is one weather condition stored inside the snapshot row
type ConditionModel struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// WeatherDataModel represents the single cached weather row
type WeatherDataModel struct {
	ID          string           `gorm:"primaryKey"`
	CityName    string           `gorm:"not null"`
	Temperature float64          `gorm:"not null"`
	FeelsLike   float64          `gorm:"not null"`
	Pressure    int              `gorm:"not null"`
	Humidity    int              `gorm:"not null"`
	WindSpeed   float64          `gorm:"not null"`
	WindDegree  int              `gorm:"not null"`
	Conditions  []ConditionModel `gorm:"serializer:json;type:text"`
	Timestamp   int64            `gorm:"not null"`
	LastUpdated int64            `gorm:"not null"`
}

func (WeatherDataModel) TableName() string {
	return "weather_data"
}

// SnapshotRepositoryAdapter implements the SnapshotStore port using GORM
type SnapshotRepositoryAdapter struct {
	db *gorm.DB
}

// NewSnapshotRepositoryAdapter creates a new snapshot repository adapter
func NewSnapshotRepositoryAdapter(db *gorm.DB) *SnapshotRepositoryAdapter {
	return &SnapshotRepositoryAdapter{db: db}
}

// Put inserts or replaces the single snapshot row
func (r *SnapshotRepositoryAdapter) Put(ctx context.Context, snapshot *ports.WeatherSnapshot) error {
	if snapshot == nil {
		return errors.NewValidationError("weather snapshot cannot be nil")
	}

	model := r.dataToModel(snapshot)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to save weather snapshot", result.Error)
	}

	return nil
}

// Get returns the stored snapshot or a NotFound error
func (r *SnapshotRepositoryAdapter) Get(ctx context.Context) (*ports.WeatherSnapshot, error) {
	var model WeatherDataModel
	result := r.db.WithContext(ctx).Where("id = ?", ports.SnapshotID).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("no cached weather snapshot")
		}
		return nil, errors.NewDatabaseError("failed to load weather snapshot", result.Error)
	}

	return r.modelToData(&model), nil
}

func (r *SnapshotRepositoryAdapter) Exists(ctx context.Context) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&WeatherDataModel{}).Where("id = ?", ports.SnapshotID).Count(&count)
	if result.Error != nil {
		return false, errors.NewDatabaseError("failed to check weather snapshot", result.Error)
	}
	return count > 0, nil
}

// Clear removes the snapshot row; clearing an empty table is not an error
func (r *SnapshotRepositoryAdapter) Clear(ctx context.Context) error {
	result := r.db.WithContext(ctx).Where("id = ?", ports.SnapshotID).Delete(&WeatherDataModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to clear weather snapshot", result.Error)
	}
	return nil
}

// Ping checks the underlying connection
func (r *SnapshotRepositoryAdapter) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.NewDatabaseError("failed to get database handle", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewDatabaseError("database ping failed", err)
	}
	return nil
}

func (r *SnapshotRepositoryAdapter) dataToModel(data *ports.WeatherSnapshot) *WeatherDataModel {
	// A nil list is stored as NULL so it reads back as nil.
	var conditions []ConditionModel
	if data.Conditions != nil {
		conditions = make([]ConditionModel, 0, len(data.Conditions))
		for _, c := range data.Conditions {
			conditions = append(conditions, ConditionModel{ID: c.ID, Main: c.Main, Description: c.Description, Icon: c.Icon})
		}
	}

	return &WeatherDataModel{
		ID:          ports.SnapshotID,
		CityName:    data.CityName,
		Temperature: data.Temperature,
		FeelsLike:   data.FeelsLike,
		Pressure:    data.Pressure,
		Humidity:    data.Humidity,
		WindSpeed:   data.WindSpeed,
		WindDegree:  data.WindDegree,
		Conditions:  conditions,
		Timestamp:   data.Timestamp,
		LastUpdated: data.LastUpdated,
	}
}

func (r *SnapshotRepositoryAdapter) modelToData(model *WeatherDataModel) *ports.WeatherSnapshot {
	var conditions []ports.Condition
	if model.Conditions != nil {
		conditions = make([]ports.Condition, 0, len(model.Conditions))
		for _, c := range model.Conditions {
			conditions = append(conditions, ports.Condition{ID: c.ID, Main: c.Main, Description: c.Description, Icon: c.Icon})
		}
	}

	return &ports.WeatherSnapshot{
		ID:          model.ID,
		CityName:    model.CityName,
		Temperature: model.Temperature,
		FeelsLike:   model.FeelsLike,
		Pressure:    model.Pressure,
		Humidity:    model.Humidity,
		WindSpeed:   model.WindSpeed,
		WindDegree:  model.WindDegree,
		Conditions:  conditions,
		Timestamp:   model.Timestamp,
		LastUpdated: model.LastUpdated,
	}
}
