package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"weatherwise/weather-service/internal/db/weatherrequest"
	"weatherwise/weather-service/internal/export"
	"weatherwise/weather-service/internal/info"
	"weatherwise/weather-service/internal/service"
	"weatherwise/weather-service/internal/weather"
)

const maxBodyBytes = 1 << 20

type Options struct {
	Timeout          time.Duration
	ListDefaultLimit int
	ListMaxLimit     int
	CORSOrigins      []string
	Now              func() time.Time
}

type WeatherHandler struct {
	weatherService service.WeatherRequestService
	repo           weatherrequest.Repository
	infoService    info.Service
	validate       *validator.Validate
	opts           Options
	handler        http.Handler
}

func NewWeatherHandler(
	weatherService service.WeatherRequestService,
	repo weatherrequest.Repository,
	infoService info.Service,
	opts Options,
) *WeatherHandler {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.ListDefaultLimit <= 0 {
		opts.ListDefaultLimit = 50
	}
	if opts.ListMaxLimit < opts.ListDefaultLimit {
		opts.ListMaxLimit = 500
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	h := &WeatherHandler{
		weatherService: weatherService,
		repo:           repo,
		infoService:    infoService,
		validate:       newValidator(),
		opts:           opts,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/requests", h.CreateRequest)
	mux.HandleFunc("GET /api/requests", h.ListRequests)
	mux.HandleFunc("GET /api/requests/{id}", h.GetRequest)
	mux.HandleFunc("PUT /api/requests/{id}", h.UpdateRequest)
	mux.HandleFunc("DELETE /api/requests/{id}", h.DeleteRequest)
	mux.HandleFunc("GET /api/info", h.Info)
	mux.HandleFunc("GET /api/media/youtube", h.YouTube)
	mux.HandleFunc("GET /api/map", h.Map)
	mux.HandleFunc("GET /api/export", h.Export)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	})

	h.handler = withRequestLogger(withCORS(opts.CORSOrigins, mux))
	return h
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}

func (h *WeatherHandler) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.opts.Timeout)
}

func (h *WeatherHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"name":    "WeatherWise API",
		"message": "Use /api/requests (POST) to fetch & store weather.",
	})
}

func (h *WeatherHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{OK: true, Time: h.opts.Now().UTC()})
}

func (h *WeatherHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var body CreateWeatherRequest
	if !h.decode(w, r, &body) {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	record, err := h.weatherService.Create(ctx, service.CreateInput{
		Location: body.Location,
		DateFrom: body.DateFrom,
		DateTo:   body.DateTo,
		Notes:    body.Notes,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	if err := h.repo.Create(ctx, &record); err != nil {
		respondWithServiceError(w, r, fmt.Errorf("storing weather request: %w", err))
		return
	}

	zerolog.Ctx(ctx).Info().
		Uint("id", record.ID).
		Str("location", record.LocationInput).
		Int("days", len(record.DailySeries)).
		Msg("weather request stored")

	respondWithJSON(w, http.StatusCreated, newWeatherRequestResponse(record))
}

func (h *WeatherHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	limit := h.opts.ListDefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > h.opts.ListMaxLimit {
			respondWithError(w, http.StatusBadRequest,
				fmt.Sprintf("limit must be an integer between 1 and %d", h.opts.ListMaxLimit))
			return
		}
		limit = n
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	records, err := h.repo.List(ctx, limit)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	out := make([]WeatherRequestResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, newWeatherRequestResponse(rec))
	}
	respondWithJSON(w, http.StatusOK, out)
}

func (h *WeatherHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	record, err := h.repo.Get(ctx, id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newWeatherRequestResponse(record))
}

func (h *WeatherHandler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body UpdateWeatherRequest
	if !h.decode(w, r, &body) {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	stored, err := h.repo.Get(ctx, id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	updated, err := h.weatherService.Update(ctx, stored, service.UpdateInput{
		Location: body.Location,
		DateFrom: body.DateFrom,
		DateTo:   body.DateTo,
		Notes:    body.Notes,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	if err := h.repo.Update(ctx, &updated); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	zerolog.Ctx(ctx).Info().Uint("id", id).Msg("weather request updated")
	respondWithJSON(w, http.StatusOK, newWeatherRequestResponse(updated))
}

func (h *WeatherHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	if err := h.repo.Delete(ctx, id); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	zerolog.Ctx(ctx).Info().Uint("id", id).Msg("weather request deleted")
	respondWithJSON(w, http.StatusOK, DeleteResponse{Deleted: id})
}

func (h *WeatherHandler) Info(w http.ResponseWriter, r *http.Request) {
	query, ok := requiredQuery(w, r, "q")
	if !ok {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	summary, err := h.infoService.Summary(ctx, query)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("query", query).Msg("wikipedia lookup failed")
		respondWithJSON(w, http.StatusBadGateway, ErrorResponse{Errors: []Error{{
			Code:   "UPSTREAM_UNAVAILABLE",
			Detail: "The wikipedia service is unavailable right now. Please try again later.",
			Status: http.StatusBadGateway,
			Title:  "Upstream Unavailable",
		}}})
		return
	}
	if summary == nil {
		respondWithError(w, http.StatusNotFound, "no info found")
		return
	}
	respondWithJSON(w, http.StatusOK, summary)
}

func (h *WeatherHandler) YouTube(w http.ResponseWriter, r *http.Request) {
	query, ok := requiredQuery(w, r, "q")
	if !ok {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	respondWithJSON(w, http.StatusOK, h.infoService.Videos(ctx, query))
}

func (h *WeatherHandler) Map(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil || !weather.ValidLatLon(lat, lon) {
		respondWithError(w, http.StatusBadRequest, "lat and lon must be valid coordinates")
		return
	}
	respondWithJSON(w, http.StatusOK, h.infoService.MapLink(lat, lon))
}

func (h *WeatherHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	records, err := h.repo.ListAll(ctx)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, records); err != nil {
		respondWithServiceError(w, r, fmt.Errorf("rendering %s export: %w", format, err))
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	if format.Attachment() {
		w.Header().Set("Content-Disposition", "attachment; filename="+format.Filename())
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to write export")
	}
}

func (h *WeatherHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			}
			respondWithError(w, http.StatusBadRequest, strings.Join(msgs, "; "))
			return false
		}
		respondWithError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 0)
	if err != nil || id == 0 {
		respondWithError(w, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

func requiredQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := strings.TrimSpace(r.URL.Query().Get(name))
	if value == "" {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("query parameter '%s' is required", name))
		return "", false
	}
	return value, true
}
