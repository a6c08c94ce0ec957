package handlers

import (
	"time"

	"weatherwise/weather-service/internal/export"
	"weatherwise/weather-service/internal/weather"
)

type CreateWeatherRequest struct {
	Location string `json:"location" validate:"max=256"`
	DateFrom string `json:"date_from" validate:"max=32"`
	DateTo   string `json:"date_to" validate:"max=32"`
	Notes    string `json:"notes" validate:"max=2000"`
}

// UpdateWeatherRequest fields left out of the body keep their stored value.
type UpdateWeatherRequest struct {
	Location *string `json:"location" validate:"omitempty,max=256"`
	DateFrom *string `json:"date_from" validate:"omitempty,max=32"`
	DateTo   *string `json:"date_to" validate:"omitempty,max=32"`
	Notes    *string `json:"notes" validate:"omitempty,max=2000"`
}

type WeatherRequestResponse struct {
	ID             uint                  `json:"id"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
	LocationInput  string                `json:"location_input"`
	ResolvedName   string                `json:"resolved_name"`
	Latitude       float64               `json:"latitude"`
	Longitude      float64               `json:"longitude"`
	LocationSource string                `json:"location_source"`
	DateFrom       weather.Date          `json:"date_from"`
	DateTo         weather.Date          `json:"date_to"`
	Provider       string                `json:"provider"`
	Weather        export.WeatherPayload `json:"weather"`
	Partial        bool                  `json:"partial"`
	Notes          string                `json:"notes"`
}

func newWeatherRequestResponse(r weather.Record) WeatherRequestResponse {
	row := export.NewRow(r)
	return WeatherRequestResponse{
		ID:             r.ID,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		LocationInput:  r.LocationInput,
		ResolvedName:   r.ResolvedLocation.DisplayName,
		Latitude:       r.ResolvedLocation.Lat,
		Longitude:      r.ResolvedLocation.Lon,
		LocationSource: string(r.ResolvedLocation.Source),
		DateFrom:       r.DateRange.From,
		DateTo:         r.DateRange.To,
		Provider:       r.Provider,
		Weather:        row.Weather,
		Partial:        r.Partial,
		Notes:          r.Notes,
	}
}

type HealthResponse struct {
	OK   bool      `json:"ok"`
	Time time.Time `json:"time"`
}

type DeleteResponse struct {
	Deleted uint `json:"deleted"`
}

type ErrorSource struct {
	Pointer string `json:"pointer,omitempty"`
}

type Error struct {
	Code   string       `json:"code"`
	Detail string       `json:"detail"`
	Status int          `json:"status"`
	Title  string       `json:"title"`
	Source *ErrorSource `json:"source,omitempty"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
