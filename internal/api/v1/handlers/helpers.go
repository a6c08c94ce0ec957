package handlers

import (
	"encoding/json"
	"errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"net/http"
	"weatherwise/weather-service/internal/db/weatherrequest"
	"weatherwise/weather-service/internal/weather"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	errorCode := "INTERNAL_ERROR"
	title := "Internal Server Error"

	switch code {
	case http.StatusBadRequest:
		errorCode = "BAD_REQUEST"
		title = "Bad Request"
	case http.StatusNotFound:
		errorCode = "NOT_FOUND"
		title = "Not Found"
	case http.StatusMethodNotAllowed:
		errorCode = "METHOD_NOT_ALLOWED"
		title = "Method Not Allowed"
	case http.StatusGatewayTimeout:
		errorCode = "TIMEOUT"
		title = "Gateway Timeout"
	}

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

// respondWithServiceError maps pipeline and storage errors to status codes.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	if werr, ok := weather.AsError(err); ok {
		status, code, title := kindStatus(werr.Kind)
		apiErr := Error{
			Code:   code,
			Detail: werr.UserMessage(),
			Status: status,
			Title:  title,
		}
		if werr.Field != "" {
			apiErr.Source = &ErrorSource{Pointer: "/" + werr.Field}
		}
		if status >= http.StatusInternalServerError {
			logger.Warn().Err(err).Str("code", code).Msg("request failed upstream")
		} else {
			logger.Info().Err(err).Str("code", code).Msg("request rejected")
		}
		respondWithJSON(w, status, ErrorResponse{Errors: []Error{apiErr}})
		return
	}

	if errors.Is(err, weatherrequest.ErrRecordNotFound) {
		respondWithError(w, http.StatusNotFound, "weather request not found")
		return
	}

	logger.Error().Err(err).Msg("request failed")
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}

func kindStatus(kind weather.Kind) (int, string, string) {
	switch kind {
	case weather.ErrInvalidInput:
		return http.StatusBadRequest, "INVALID_INPUT", "Invalid Input"
	case weather.ErrInvalidDateRange:
		return http.StatusBadRequest, "INVALID_DATE_RANGE", "Invalid Date Range"
	case weather.ErrLocationNotFound:
		return http.StatusNotFound, "LOCATION_NOT_FOUND", "Location Not Found"
	case weather.ErrUpstreamUnavailable:
		return http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "Upstream Unavailable"
	case weather.ErrPartialDataUnavailable:
		return http.StatusUnprocessableEntity, "PARTIAL_DATA_UNAVAILABLE", "Partial Data Unavailable"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal Server Error"
	}
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
