package weather

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies pipeline failures. Kinds are errors themselves so callers can
// match with errors.Is(err, weather.ErrLocationNotFound).
type Kind string

const (
	ErrInvalidInput           Kind = "invalid input"
	ErrInvalidDateRange       Kind = "invalid date range"
	ErrLocationNotFound       Kind = "location not found"
	ErrUpstreamUnavailable    Kind = "upstream unavailable"
	ErrPartialDataUnavailable Kind = "partial data unavailable"
)

func (k Kind) Error() string {
	return string(k)
}

// Error carries the kind plus enough context to render a specific message.
type Error struct {
	Kind     Kind
	Field    string
	Value    string
	Provider string
	Dates    []Date
	Detail   string
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Field != "" {
		fmt.Fprintf(&b, " [%s]", e.Field)
	}
	if e.Provider != "" {
		fmt.Fprintf(&b, " (provider %s)", e.Provider)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// UserMessage is the text shown to an end user for this failure.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case ErrInvalidInput:
		msg := "The location is invalid. Enter a place name, a 5-digit ZIP code or coordinates as \"lat,lon\"."
		if e.Detail != "" {
			msg += " (" + e.Detail + ")"
		}
		return msg
	case ErrInvalidDateRange:
		field := e.Field
		if field == "" {
			field = "date range"
		}
		return fmt.Sprintf("The %s is invalid: %s.", field, e.Detail)
	case ErrLocationNotFound:
		return fmt.Sprintf("No location matching %q could be found.", e.Value)
	case ErrUpstreamUnavailable:
		provider := e.Provider
		if provider == "" {
			provider = "upstream"
		}
		return fmt.Sprintf("The %s service is unavailable right now. Please try again later.", provider)
	case ErrPartialDataUnavailable:
		dates := make([]string, 0, len(e.Dates))
		for _, d := range e.Dates {
			dates = append(dates, d.String())
		}
		return fmt.Sprintf("Weather data is not available for %s.", strings.Join(dates, ", "))
	}
	return e.Error()
}

// AsError returns the outermost *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var werr *Error
	if errors.As(err, &werr) {
		return werr, true
	}
	return nil, false
}

func InvalidInput(value, detail string) *Error {
	return &Error{Kind: ErrInvalidInput, Field: "location", Value: value, Detail: detail}
}

func InvalidDateRange(field, detail string) *Error {
	return &Error{Kind: ErrInvalidDateRange, Field: field, Detail: detail}
}

func LocationNotFound(value string, cause error) *Error {
	return &Error{Kind: ErrLocationNotFound, Field: "location", Value: value, Err: cause}
}

func UpstreamUnavailable(provider string, cause error) *Error {
	return &Error{Kind: ErrUpstreamUnavailable, Provider: provider, Err: cause}
}

func PartialDataUnavailable(provider string, missing []Date) *Error {
	return &Error{
		Kind:     ErrPartialDataUnavailable,
		Provider: provider,
		Dates:    missing,
		Detail:   fmt.Sprintf("%d day(s) missing", len(missing)),
	}
}
