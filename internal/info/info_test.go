package info_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"weatherwise/weather-service/internal/info"
	"weatherwise/weather-service/internal/providers"
)

type InfoServiceTestSuite struct {
	suite.Suite
	server *httptest.Server
	ctx    context.Context
}

func (s *InfoServiceTestSuite) SetupTest() {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/rest_v1/page/summary/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/rest_v1/page/summary/New_York_City":
			w.Write([]byte(`{"title":"New York City","extract":"New York City is the most populous city in the United States.",
				"content_urls":{"desktop":{"page":"https://en.wikipedia.org/wiki/New_York_City"}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	mux.HandleFunc("/youtube/v3/search", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		s.Equal("snippet", q.Get("part"))
		s.Equal("video", q.Get("type"))
		s.Equal("5", q.Get("maxResults"))
		if q.Get("key") != "good-key" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Write([]byte(`{"items":[
			{"id":{"kind":"youtube#video","videoId":"abc123"},"snippet":{"title":"Paris in 4K"}},
			{"id":{"kind":"youtube#channel"},"snippet":{"title":"A channel"}},
			{"id":{"kind":"youtube#video","videoId":"def456"},"snippet":{"title":"Walking Paris"}}
		]}`))
	})
	s.server = httptest.NewServer(mux)
	s.ctx = context.Background()
}

func (s *InfoServiceTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *InfoServiceTestSuite) newService(cfg info.Config) info.Service {
	client := func(name string) *providers.Client {
		return providers.NewClient(providers.Config{Name: name, BaseURL: s.server.URL, Timeout: time.Second, RetryWait: time.Millisecond})
	}
	return info.NewService(client("wikipedia"), client("youtube"), cfg)
}

func (s *InfoServiceTestSuite) TestSummary() {
	summary, err := s.newService(info.Config{}).Summary(s.ctx, "New York City")

	s.NoError(err)
	s.Require().NotNil(summary)
	s.Equal("New York City", summary.Title)
	s.Equal("https://en.wikipedia.org/wiki/New_York_City", summary.URL)
	s.Contains(summary.Extract, "most populous")
}

func (s *InfoServiceTestSuite) TestSummaryNotFound() {
	summary, err := s.newService(info.Config{}).Summary(s.ctx, "Xyzzyplace12345")

	s.NoError(err)
	s.Nil(summary)
}

func (s *InfoServiceTestSuite) TestVideosWithoutKeyReturnsLink() {
	videos := s.newService(info.Config{}).Videos(s.ctx, "New York")

	s.Equal(info.ModeLink, videos.Mode)
	s.Equal("https://www.youtube.com/results?search_query=New+York", videos.SearchURL)
	s.Empty(videos.Results)
}

func (s *InfoServiceTestSuite) TestVideosWithKey() {
	videos := s.newService(info.Config{YouTubeAPIKey: "good-key"}).Videos(s.ctx, "Paris")

	s.Equal(info.ModeAPI, videos.Mode)
	s.Require().Len(videos.Results, 2)
	s.Equal(info.Video{Title: "Paris in 4K", VideoID: "abc123", URL: "https://www.youtube.com/watch?v=abc123"}, videos.Results[0])
	s.Equal("def456", videos.Results[1].VideoID)
}

func (s *InfoServiceTestSuite) TestVideosFallBackOnAPIError() {
	videos := s.newService(info.Config{YouTubeAPIKey: "bad-key"}).Videos(s.ctx, "Paris")

	s.Equal(info.ModeLink, videos.Mode)
	s.NotEmpty(videos.SearchURL)
}

func (s *InfoServiceTestSuite) TestMapLinkOpenStreetMap() {
	link := s.newService(info.Config{}).MapLink(40.7128, -74.006)

	s.Equal(info.MapProviderOSM, link.Provider)
	s.Equal("https://www.openstreetmap.org/?mlat=40.7128&mlon=-74.006#map=10/40.7128/-74.006", link.URL)
}

func (s *InfoServiceTestSuite) TestMapLinkGoogle() {
	link := s.newService(info.Config{GoogleStaticMapsKey: "maps-key"}).MapLink(48.85, 2.35)

	s.Equal(info.MapProviderGoogle, link.Provider)
	s.Contains(link.URL, "https://maps.googleapis.com/maps/api/staticmap?")
	s.Contains(link.URL, "center=48.85%2C2.35")
	s.Contains(link.URL, "key=maps-key")
}

func TestInfoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InfoServiceTestSuite))
}
