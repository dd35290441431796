package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"pitstop.roadtripper.org/internal/geo"
	"pitstop.roadtripper.org/internal/maps"
	"pitstop.roadtripper.org/internal/models"
	"pitstop.roadtripper.org/internal/oracle"
)

const (
	// RouteCorridorKm is the hard filter for stop suggestions: places
	// farther from the route than this never surface.
	RouteCorridorKm = 5.0

	// SuitableCorridorKm marks a candidate as comfortably on the way.
	SuitableCorridorKm = 2.0

	// SearchRadiusM biases the stop-suggestion text search around the
	// anchor point.
	SearchRadiusM = 8000

	// SearchBiasRadiusM biases free-text search around the user's
	// location.
	SearchBiasRadiusM = 10000

	// NearbyRadiusM is the nearby-search fallback radius when free-text
	// search finds nothing near the user.
	NearbyRadiusM = 5000

	// MaxEnrichedStops caps how many suggestions get the expensive
	// detail + review treatment.
	MaxEnrichedStops = 5

	// MaxRankedPlaces caps how many search results are enriched and
	// ranked.
	MaxRankedPlaces = 10

	// maxDiagnosticRoutePoints limits the route echo in responses.
	maxDiagnosticRoutePoints = 10
)

// DefaultSearchLocation centers searches when no user location is known.
var DefaultSearchLocation = geo.Point{Lat: 1.3521, Lng: 103.8198}

// PlaceSearcher is the place-provider port the planner depends on.
type PlaceSearcher interface {
	TextSearch(ctx context.Context, query string, bias *maps.LocationBias) ([]maps.Place, error)
	NearbySearch(ctx context.Context, location geo.Point, radiusM int, placeType, keyword string) ([]maps.Place, error)
	PlaceDetails(ctx context.Context, placeID string, fields []string) (*maps.PlaceDetails, error)
}

// Oracle is the language-model port the planner depends on.
type Oracle interface {
	ParseConstraint(ctx context.Context, stopQuery string) (*models.Constraint, string, error)
	RewriteSearchQuery(ctx context.Context, query string) (string, error)
	SummarizeReviews(ctx context.Context, reviews []string) (*oracle.ReviewSummary, error)
}

// Planner resolves natural-language stop requests against a route and
// ranks free-text place searches. It holds no per-request state.
type Planner struct {
	searcher PlaceSearcher
	oracle   Oracle
	logger   *slog.Logger
}

func New(searcher PlaceSearcher, o Oracle, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{searcher: searcher, oracle: o, logger: logger}
}

// SearchInfo explains how the search anchor was chosen.
type SearchInfo struct {
	Timing              *float64   `json:"timing"`
	Distance            *float64   `json:"distance"`
	Location            *string    `json:"location"`
	EstimatedDistanceKm *float64   `json:"estimatedDistanceKm"`
	SearchRadiusKm      float64    `json:"searchRadius"`
	AverageSpeedKmh     float64    `json:"averageSpeed"`
	SearchLocation      geo.Point  `json:"searchLocation"`
	SearchType          SearchType `json:"searchType"`
}

// StopSuggestions is the result of resolving a stop request along a route.
type StopSuggestions struct {
	Parsed         *models.Constraint `json:"parsed"`
	AIText         string             `json:"aiText"`
	SuggestedStops []*Candidate       `json:"suggestedStops"`
	SearchLocation geo.Point          `json:"searchLocation"`
	SearchInfo     SearchInfo         `json:"searchInfo"`
	RoutePoints    []geo.Point        `json:"routePoints"`
}

// SuggestStops runs the full stop-suggestion pipeline: parse the request,
// anchor a point on the route, search around it, filter to the route
// corridor, and enrich the best candidates.
func (p *Planner) SuggestStops(ctx context.Context, routePolyline string, currentLocation geo.Point, stopQuery string) (*StopSuggestions, error) {
	routePoints, err := geo.DecodePolyline(routePolyline)
	if err != nil {
		return nil, fmt.Errorf("decoding route polyline: %w", err)
	}

	parsed, aiText, err := p.oracle.ParseConstraint(ctx, stopQuery)
	if err != nil {
		return nil, fmt.Errorf("parsing stop request: %w", err)
	}
	p.logger.Info("stop request parsed",
		"type", parsed.Type,
		"hasLocation", parsed.HasLocation(),
		"hasDistance", parsed.HasDistance(),
		"hasTiming", parsed.HasTiming(),
		"features", len(parsed.Features))

	anchor, err := SelectAnchor(ctx, parsed, currentLocation, routePoints, func(ctx context.Context, name string) (geo.Point, bool, error) {
		return ResolveNamedLocation(ctx, p.searcher, name, routePoints)
	})
	if err != nil {
		return nil, fmt.Errorf("selecting search anchor: %w", err)
	}
	p.logger.Info("search anchor selected",
		"searchType", string(anchor.SearchType),
		"lat", anchor.Point.Lat, "lng", anchor.Point.Lng)

	places, err := p.searcher.TextSearch(ctx, buildStopQuery(parsed), &maps.LocationBias{
		Location: anchor.Point,
		RadiusM:  SearchRadiusM,
	})
	if err != nil {
		return nil, fmt.Errorf("searching places near anchor: %w", err)
	}
	if len(places) > MaxRankedPlaces {
		places = places[:MaxRankedPlaces]
	}

	var candidates []*Candidate
	for _, place := range places {
		c := newCandidate(place, currentLocation, routePoints)
		if c.DistanceFromRouteKm < RouteCorridorKm {
			candidates = append(candidates, c)
		}
	}
	SortByRouteProximity(candidates)

	top := filterByFeatures(candidates, parsed.Features, MaxEnrichedStops)
	p.enrich(ctx, top, enrichOptions{
		fromStart: true,
		features:  parsed.Features,
		summarize: true,
	})
	if len(parsed.Features) > 0 {
		SortByFeatureMatch(top)
	}

	return &StopSuggestions{
		Parsed:         parsed,
		AIText:         aiText,
		SuggestedStops: top,
		SearchLocation: anchor.Point,
		SearchInfo:     buildSearchInfo(parsed, anchor),
		RoutePoints:    diagnosticPoints(routePoints),
	}, nil
}

// buildStopQuery combines the parsed place type with any requested
// features so the text search is already feature-aware.
func buildStopQuery(c *models.Constraint) string {
	parts := []string{c.Type}
	parts = append(parts, c.Features...)
	return strings.TrimSpace(strings.Join(parts, " "))
}

func buildSearchInfo(c *models.Constraint, anchor Anchor) SearchInfo {
	info := SearchInfo{
		Timing:          c.Timing,
		Distance:        c.Distance,
		Location:        c.Location,
		SearchRadiusKm:  float64(SearchRadiusM) / 1000,
		AverageSpeedKmh: geo.AverageSpeedKmh,
		SearchLocation:  anchor.Point,
		SearchType:      anchor.SearchType,
	}
	switch {
	case c.HasTiming():
		km := *c.Timing * geo.AverageSpeedKmh
		info.EstimatedDistanceKm = &km
	case c.HasDistance():
		info.EstimatedDistanceKm = c.Distance
	}
	return info
}

func diagnosticPoints(routePoints []geo.Point) []geo.Point {
	if len(routePoints) > maxDiagnosticRoutePoints {
		return routePoints[:maxDiagnosticRoutePoints]
	}
	return routePoints
}

// SearchResults is the outcome of a ranked free-text place search.
type SearchResults struct {
	Places         []*Candidate `json:"places"`
	SearchLocation geo.Point    `json:"searchLocation"`
	TotalResults   int          `json:"totalResults"`

	// IntelligentSearchUsed reports whether the served results came from
	// an oracle-rewritten query, not merely that a rewrite was requested.
	IntelligentSearchUsed bool `json:"intelligentSearchUsed"`
}

// Search runs a free-text place search biased to the user's location.
// When the provider finds nothing (or the caller asks for it), the oracle
// rewrites the query into a searchable place name and the search retries
// once; a nearby search around the user is the last resort. Results are
// enriched and ranked with the sentiment-weighted composite.
func (p *Planner) Search(ctx context.Context, query string, userLocation *geo.Point, useIntelligentSearch bool) (*SearchResults, error) {
	var bias *maps.LocationBias
	if userLocation != nil {
		bias = &maps.LocationBias{Location: *userLocation, RadiusM: SearchBiasRadiusM}
	}

	places, err := p.searcher.TextSearch(ctx, query, bias)
	if err != nil {
		return nil, fmt.Errorf("searching places: %w", err)
	}

	intelligentUsed := false
	if useIntelligentSearch || len(places) == 0 {
		rewritten, err := p.oracle.RewriteSearchQuery(ctx, query)
		if err != nil {
			p.logger.Warn("search query rewrite failed", "query", query, "error", err)
		} else if rewritten != "" && rewritten != query {
			p.logger.Info("retrying with rewritten query", "query", query, "rewritten", rewritten)
			retried, err := p.searcher.TextSearch(ctx, rewritten, bias)
			if err != nil {
				p.logger.Warn("rewritten search failed", "rewritten", rewritten, "error", err)
			} else if len(retried) > 0 {
				places = retried
				intelligentUsed = true
			}
		}
	}

	if len(places) == 0 && userLocation != nil {
		nearby, err := p.searcher.NearbySearch(ctx, *userLocation, NearbyRadiusM, "", query)
		if err != nil {
			p.logger.Warn("nearby fallback failed", "query", query, "error", err)
		} else {
			places = nearby
		}
	}

	total := len(places)
	if len(places) > MaxRankedPlaces {
		places = places[:MaxRankedPlaces]
	}

	candidates := make([]*Candidate, 0, len(places))
	for _, place := range places {
		candidates = append(candidates, &Candidate{Place: place})
	}
	p.enrich(ctx, candidates, enrichOptions{summarize: true})

	center := DefaultSearchLocation
	if userLocation != nil {
		center = *userLocation
	}
	RankByComposite(candidates, center, SentimentWeights)

	return &SearchResults{
		Places:                candidates,
		SearchLocation:        center,
		TotalResults:          total,
		IntelligentSearchUsed: intelligentUsed,
	}, nil
}
