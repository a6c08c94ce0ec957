package weatherrequest

import (
	"time"

	"weatherwise/weather-service/internal/weather"
)

type WeatherRequest struct {
	ID             uint                   `json:"id" gorm:"primaryKey"`
	CreatedAt      time.Time              `json:"created_at" gorm:"index:idx_weather_requests_created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
	LocationInput  string                 `json:"location_input" gorm:"column:location_input;not null;index:idx_weather_requests_location_input"`
	ResolvedName   string                 `json:"resolved_name" gorm:"column:resolved_name"`
	Latitude       float64                `json:"latitude" gorm:"column:latitude;not null"`
	Longitude      float64                `json:"longitude" gorm:"column:longitude;not null"`
	LocationSource string                 `json:"location_source" gorm:"column:location_source"`
	DateFrom       time.Time              `json:"date_from" gorm:"column:date_from;type:date;not null"`
	DateTo         time.Time              `json:"date_to" gorm:"column:date_to;type:date;not null"`
	Provider       string                 `json:"provider" gorm:"column:provider;not null"`
	Daily          []weather.DailyWeather `json:"daily" gorm:"column:weather_json;type:text;serializer:json;not null"`
	MissingDates   []weather.Date         `json:"missing_dates" gorm:"column:missing_dates;type:text;serializer:json"`
	Notes          string                 `json:"notes" gorm:"column:notes;type:text"`
}

func (WeatherRequest) TableName() string {
	return "weather_requests"
}

func fromRecord(r *weather.Record) WeatherRequest {
	return WeatherRequest{
		ID:             r.ID,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		LocationInput:  r.LocationInput,
		ResolvedName:   r.ResolvedLocation.DisplayName,
		Latitude:       r.ResolvedLocation.Lat,
		Longitude:      r.ResolvedLocation.Lon,
		LocationSource: string(r.ResolvedLocation.Source),
		DateFrom:       r.DateRange.From.Time(),
		DateTo:         r.DateRange.To.Time(),
		Provider:       r.Provider,
		Daily:          r.DailySeries,
		MissingDates:   r.MissingDates,
		Notes:          r.Notes,
	}
}

func (m WeatherRequest) toRecord() weather.Record {
	daily := m.Daily
	if daily == nil {
		daily = []weather.DailyWeather{}
	}
	return weather.Record{
		ID:            m.ID,
		LocationInput: m.LocationInput,
		ResolvedLocation: weather.ResolvedLocation{
			Lat:         m.Latitude,
			Lon:         m.Longitude,
			DisplayName: m.ResolvedName,
			Source:      weather.LocationSource(m.LocationSource),
		},
		DateRange: weather.DateRange{
			From: weather.DateOf(m.DateFrom),
			To:   weather.DateOf(m.DateTo),
		},
		DailySeries:  daily,
		MissingDates: m.MissingDates,
		Partial:      len(m.MissingDates) > 0,
		Provider:     m.Provider,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
