package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/ai4health/triage-api/schema"
)

const defaultTimeout = 5 * time.Second

var (
	ErrNoGeoInfoFound = fmt.Errorf("no geo information found")
	ErrEmptyAddress   = fmt.Errorf("empty address")
)

// LocationResolver - interface for resolving a free form address into coordinates
type LocationResolver interface {
	Resolve(ctx context.Context, address string) (schema.Location, error)
}

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

type GeocodingLocationResolver struct {
	client *maps.Client
	region string
}

func NewGeocodingLocationResolver(client *maps.Client, region string) *GeocodingLocationResolver {
	return &GeocodingLocationResolver{
		client: client,
		region: region,
	}
}

func (g *GeocodingLocationResolver) Resolve(ctx context.Context, address string) (schema.Location, error) {
	if strings.TrimSpace(address) == "" {
		return schema.Location{}, ErrEmptyAddress
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	log.WithFields(log.Fields{
		"prefix":  "geo",
		"address": address,
	}).Debug("geocode address")

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  address,
		Region:   g.region,
		Language: "en",
	})
	if nil != err {
		return schema.Location{}, err
	}

	if len(geos) == 0 {
		return schema.Location{}, ErrNoGeoInfoFound
	}

	return schema.Location{
		Latitude:  geos[0].Geometry.Location.Lat,
		Longitude: geos[0].Geometry.Location.Lng,
	}, nil
}

// AreaLocationResolver resolves addresses which mention one of the
// known coverage areas. It needs no network access.
type AreaLocationResolver struct {
	areas map[string]schema.Location
}

// NewAreaLocationResolver indexes the coverage area of each ambulance partner
func NewAreaLocationResolver(ngos []schema.NGO) *AreaLocationResolver {
	areas := make(map[string]schema.Location)
	for _, n := range ngos {
		if n.CoverageArea == "" {
			continue
		}
		area := strings.ToLower(n.CoverageArea)
		if _, ok := areas[area]; !ok {
			areas[area] = n.Location()
		}
	}
	return &AreaLocationResolver{areas: areas}
}

func (r *AreaLocationResolver) Resolve(_ context.Context, address string) (schema.Location, error) {
	a := strings.ToLower(address)

	// the longest area name wins, "chennai metro" before "chennai"
	matched := ""
	for area := range r.areas {
		if strings.Contains(a, area) && len(area) > len(matched) {
			matched = area
		}
	}

	if matched == "" {
		return schema.Location{}, ErrNoGeoInfoFound
	}
	return r.areas[matched], nil
}

type MultipleLocationResolver struct {
	resolvers []LocationResolver
}

func NewMultipleLocationResolver(resolvers ...LocationResolver) *MultipleLocationResolver {
	return &MultipleLocationResolver{
		resolvers: resolvers,
	}
}

func (r *MultipleLocationResolver) Resolve(ctx context.Context, address string) (schema.Location, error) {
	var errors []error
	for _, resolver := range r.resolvers {
		result, err := resolver.Resolve(ctx, address)
		if err != nil {
			errors = append(errors, err)
		} else {
			return result, nil
		}
	}

	return schema.Location{}, NewMultipleResolverErrors(errors)
}
