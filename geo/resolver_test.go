package geo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"googlemaps.github.io/maps"

	"github.com/ai4health/triage-api/schema"
)

type ResolverTestSuite struct {
	suite.Suite
	server    *httptest.Server
	mapClient *maps.Client
}

func (s *ResolverTestSuite) SetupSuite() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("address") {
		case "SRM Nagar, Kattankulathur":
			fmt.Fprint(w, `{"status":"OK","results":[{"formatted_address":"SRM Nagar, Kattankulathur, Tamil Nadu 603203, India","geometry":{"location":{"lat":12.823,"lng":80.0444}}}]}`)
		default:
			fmt.Fprint(w, `{"status":"ZERO_RESULTS","results":[]}`)
		}
	}))

	client, err := maps.NewClient(maps.WithAPIKey("test-key"), maps.WithBaseURL(s.server.URL))
	s.Require().NoError(err)
	s.mapClient = client
}

func (s *ResolverTestSuite) TearDownSuite() {
	s.server.Close()
}

func (s *ResolverTestSuite) TestGeocodingResolve() {
	r := NewGeocodingLocationResolver(s.mapClient, "in")

	loc, err := r.Resolve(context.Background(), "SRM Nagar, Kattankulathur")
	s.NoError(err)
	s.Equal(schema.Location{Latitude: 12.823, Longitude: 80.0444}, loc)
}

func (s *ResolverTestSuite) TestGeocodingNoResult() {
	r := NewGeocodingLocationResolver(s.mapClient, "in")

	_, err := r.Resolve(context.Background(), "nowhere at all")
	s.Equal(ErrNoGeoInfoFound, err)

	_, err = r.Resolve(context.Background(), "  ")
	s.Equal(ErrEmptyAddress, err)
}

func (s *ResolverTestSuite) TestAreaResolve() {
	r := NewAreaLocationResolver(schema.DefaultNGOs)

	loc, err := r.Resolve(context.Background(), "12 Main Road, Tambaram")
	s.NoError(err)
	s.Equal(schema.Location{Latitude: 12.9300, Longitude: 80.1200}, loc)

	loc, err = r.Resolve(context.Background(), "Anna Salai, Chennai Metro")
	s.NoError(err)
	s.Equal(schema.Location{Latitude: 13.0500, Longitude: 80.2800}, loc)

	_, err = r.Resolve(context.Background(), "Bengaluru")
	s.Equal(ErrNoGeoInfoFound, err)
}

func (s *ResolverTestSuite) TestMultipleResolverFallback() {
	r := NewMultipleLocationResolver(
		NewGeocodingLocationResolver(s.mapClient, "in"),
		NewAreaLocationResolver(schema.DefaultNGOs),
	)

	loc, err := r.Resolve(context.Background(), "near Adyar bridge")
	s.NoError(err)
	s.Equal(schema.Location{Latitude: 13.0000, Longitude: 80.2600}, loc)

	_, err = r.Resolve(context.Background(), "Bengaluru")
	s.IsType(&MultipleResolverErrors{}, err)
	s.Contains(err.Error(), "#1: no geo information found")
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}
