package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"weatherwise/weather-service/internal/weather"
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "md"
	FormatPDF      Format = "pdf"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatCSV, FormatMarkdown, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format %q, expected json, csv, md or pdf", s)
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/json"
	}
}

// Attachment reports whether browsers should download rather than display the export.
func (f Format) Attachment() bool {
	return f == FormatCSV || f == FormatPDF
}

func (f Format) Filename() string {
	return "weatherwise." + string(f)
}

type WeatherPayload struct {
	Daily        []weather.DailyWeather `json:"daily"`
	MissingDates []weather.Date         `json:"missing_dates,omitempty"`
}

// Row is the flattened export shape of a stored request.
type Row struct {
	ID            uint           `json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	LocationInput string         `json:"location_input"`
	ResolvedName  string         `json:"resolved_name"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	DateFrom      weather.Date   `json:"date_from"`
	DateTo        weather.Date   `json:"date_to"`
	Provider      string         `json:"provider"`
	Weather       WeatherPayload `json:"weather"`
	Notes         string         `json:"notes"`
}

func NewRow(r weather.Record) Row {
	daily := r.DailySeries
	if daily == nil {
		daily = []weather.DailyWeather{}
	}
	return Row{
		ID:            r.ID,
		CreatedAt:     r.CreatedAt.UTC(),
		LocationInput: r.LocationInput,
		ResolvedName:  r.ResolvedLocation.DisplayName,
		Latitude:      r.ResolvedLocation.Lat,
		Longitude:     r.ResolvedLocation.Lon,
		DateFrom:      r.DateRange.From,
		DateTo:        r.DateRange.To,
		Provider:      r.Provider,
		Weather:       WeatherPayload{Daily: daily, MissingDates: r.MissingDates},
		Notes:         r.Notes,
	}
}

func Rows(records []weather.Record) []Row {
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, NewRow(r))
	}
	return rows
}

// Write renders records, oldest first, in the given format.
func Write(w io.Writer, format Format, records []weather.Record) error {
	rows := Rows(records)
	switch format {
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatCSV:
		return writeCSV(w, rows)
	case FormatMarkdown:
		return writeMarkdown(w, rows)
	case FormatPDF:
		return writePDF(w, rows)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

func writeJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// cell renders an optional daily value, "-" when the provider had none.
func cell(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatFloat(*v)
}

func codeCell(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
