package weatherrequest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"weatherwise/weather-service/internal/weather"
)

var ErrRecordNotFound = errors.New("weather request not found")

type Repository interface {
	Create(ctx context.Context, record *weather.Record) error
	Get(ctx context.Context, id uint) (weather.Record, error)
	List(ctx context.Context, limit int) ([]weather.Record, error)
	ListAll(ctx context.Context) ([]weather.Record, error)
	Update(ctx context.Context, record *weather.Record) error
	Delete(ctx context.Context, id uint) error
}

type WeatherSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &WeatherSQLRepository{db: db}
}

// Create stores the record and fills in its id and timestamps.
func (r *WeatherSQLRepository) Create(ctx context.Context, record *weather.Record) error {
	model := fromRecord(record)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}

	record.ID = model.ID
	record.CreatedAt = model.CreatedAt
	record.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *WeatherSQLRepository) Get(ctx context.Context, id uint) (weather.Record, error) {
	var model WeatherRequest
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return weather.Record{}, fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
		}
		return weather.Record{}, err
	}
	return model.toRecord(), nil
}

// List returns the newest records first.
func (r *WeatherSQLRepository) List(ctx context.Context, limit int) ([]weather.Record, error) {
	var models []WeatherRequest
	if err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}
	return toRecords(models), nil
}

// ListAll returns every record, oldest first.
func (r *WeatherSQLRepository) ListAll(ctx context.Context) ([]weather.Record, error) {
	var models []WeatherRequest
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return toRecords(models), nil
}

// Update overwrites every column except created_at.
func (r *WeatherSQLRepository) Update(ctx context.Context, record *weather.Record) error {
	model := fromRecord(record)
	model.UpdatedAt = time.Now()

	result := r.db.WithContext(ctx).Model(&model).Select("*").Omit("id", "created_at").Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrRecordNotFound, record.ID)
	}

	record.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *WeatherSQLRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&WeatherRequest{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
	}
	return nil
}

func toRecords(models []WeatherRequest) []weather.Record {
	records := make([]weather.Record, 0, len(models))
	for _, m := range models {
		records = append(records, m.toRecord())
	}
	return records
}
