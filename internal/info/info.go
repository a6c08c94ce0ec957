package info

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"weatherwise/weather-service/internal/providers"
)

const (
	youtubeResults     = "5"
	mapZoom            = 10
	youtubeWatchURL    = "https://www.youtube.com/watch?v="
	youtubeSearchURL   = "https://www.youtube.com/results?search_query="
	googleStaticMapURL = "https://maps.googleapis.com/maps/api/staticmap"

	ModeAPI  = "api"
	ModeLink = "link"

	MapProviderGoogle = "google_static_maps"
	MapProviderOSM    = "openstreetmap"
)

type Summary struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
	URL     string `json:"url"`
}

type Video struct {
	Title   string `json:"title"`
	VideoID string `json:"videoId"`
	URL     string `json:"url"`
}

type Videos struct {
	Mode      string  `json:"mode"`
	Results   []Video `json:"results,omitempty"`
	SearchURL string  `json:"search_url,omitempty"`
}

type MapLink struct {
	Provider string `json:"provider"`
	URL      string `json:"url"`
}

// Service looks up supplementary material about a place. None of it is part
// of a stored weather request.
type Service interface {
	Summary(ctx context.Context, query string) (*Summary, error)
	Videos(ctx context.Context, query string) Videos
	MapLink(lat, lon float64) MapLink
}

type Config struct {
	YouTubeAPIKey       string
	GoogleStaticMapsKey string
}

type service struct {
	wikipedia *providers.Client
	youtube   *providers.Client
	cfg       Config
}

func NewService(wikipedia, youtube *providers.Client, cfg Config) Service {
	return &service{
		wikipedia: wikipedia,
		youtube:   youtube,
		cfg:       cfg,
	}
}

type wikiSummaryResponse struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// Summary returns nil, nil when Wikipedia has no page for the query.
func (s *service) Summary(ctx context.Context, query string) (*Summary, error) {
	page := strings.ReplaceAll(strings.TrimSpace(query), " ", "_")
	if page == "" {
		return nil, nil
	}

	var resp wikiSummaryResponse
	err := s.wikipedia.GetJSON(ctx, "/api/rest_v1/page/summary/"+url.PathEscape(page), nil, &resp)
	if errors.Is(err, providers.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("wikipedia summary for %q: %w", query, err)
	}

	return &Summary{
		Title:   resp.Title,
		Extract: resp.Extract,
		URL:     resp.ContentURLs.Desktop.Page,
	}, nil
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

// Videos uses the YouTube Data API when a key is configured and otherwise,
// or when the API fails, returns a search link.
func (s *service) Videos(ctx context.Context, query string) Videos {
	link := Videos{Mode: ModeLink, SearchURL: youtubeSearchURL + url.QueryEscape(query)}
	if s.cfg.YouTubeAPIKey == "" || s.youtube == nil {
		return link
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", youtubeResults)
	params.Set("key", s.cfg.YouTubeAPIKey)

	var resp youtubeSearchResponse
	if err := s.youtube.GetJSON(ctx, "/youtube/v3/search", params, &resp); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("query", query).Msg("youtube search failed, returning search link")
		return link
	}

	videos := Videos{Mode: ModeAPI, Results: make([]Video, 0, len(resp.Items))}
	for _, item := range resp.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos.Results = append(videos.Results, Video{
			Title:   item.Snippet.Title,
			VideoID: item.ID.VideoID,
			URL:     youtubeWatchURL + item.ID.VideoID,
		})
	}
	return videos
}

func (s *service) MapLink(lat, lon float64) MapLink {
	coords := formatCoord(lat) + "," + formatCoord(lon)

	if s.cfg.GoogleStaticMapsKey != "" {
		params := url.Values{}
		params.Set("center", coords)
		params.Set("zoom", strconv.Itoa(mapZoom))
		params.Set("size", "600x300")
		params.Set("markers", "color:red|"+coords)
		params.Set("key", s.cfg.GoogleStaticMapsKey)
		return MapLink{Provider: MapProviderGoogle, URL: googleStaticMapURL + "?" + params.Encode()}
	}

	return MapLink{
		Provider: MapProviderOSM,
		URL: fmt.Sprintf("https://www.openstreetmap.org/?mlat=%s&mlon=%s#map=%d/%s/%s",
			formatCoord(lat), formatCoord(lon), mapZoom, formatCoord(lat), formatCoord(lon)),
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
