package planner

import (
	"context"

	"golang.org/x/sync/errgroup"

	"pitstop.roadtripper.org/internal/geo"
	"pitstop.roadtripper.org/internal/oracle"
)

// enrichConcurrency bounds how many place detail lookups run at once.
const enrichConcurrency = 5

// detailFields is what the detail endpoint is asked for during enrichment.
var detailFields = []string{
	"name", "rating", "user_ratings_total", "formatted_address",
	"geometry", "website", "formatted_phone_number", "reviews", "types",
}

type enrichOptions struct {
	// fromStart attaches distance and travel time from the trip start,
	// which only makes sense when candidates were built against a route.
	fromStart bool
	features  []string
	summarize bool
}

// enrich fans out detail lookups for the candidates and attaches the
// results in place. Individual failures degrade that one candidate rather
// than the whole batch: the search-tier fields stay usable and the review
// summary falls back to a rating blurb.
func (p *Planner) enrich(ctx context.Context, candidates []*Candidate, opts enrichOptions) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)

	for _, c := range candidates {
		g.Go(func() error {
			p.enrichOne(gctx, c, opts)
			return nil
		})
	}
	g.Wait()
}

func (p *Planner) enrichOne(ctx context.Context, c *Candidate, opts enrichOptions) {
	details, err := p.searcher.PlaceDetails(ctx, c.PlaceID, detailFields)
	if err != nil {
		p.logger.Warn("place details lookup failed",
			"placeId", c.PlaceID, "name", c.Name, "error", err)
	} else if details != nil {
		c.Website = details.Website
		c.FormattedPhoneNumber = details.FormattedPhoneNumber
		c.Reviews = details.Reviews
		if details.FormattedAddress != "" {
			c.FormattedAddress = details.FormattedAddress
		}
		if len(details.Types) > 0 {
			c.Types = details.Types
		}
		if details.Rating > 0 {
			c.Rating = details.Rating
		}
		if details.UserRatingsTotal > 0 {
			c.UserRatingsTotal = details.UserRatingsTotal
		}
		if len(details.Photos) > 0 {
			c.Photos = details.Photos
		}
	}

	if opts.fromStart {
		// Shown at the anchoring speed so the figure matches how the
		// stop was located.
		c.DistanceFromStartKm = round2(c.DistanceFromOriginKm)
		minutes := int(c.DistanceFromOriginKm/geo.AverageSpeedKmh*60 + 0.5)
		c.TimeFromStart = formatMinutes(minutes)
	}

	matchFeatures(c, opts.features)

	// Places without reviews get no overview at all; the fallback blurb
	// only stands in when reviews exist but summarization fails.
	if !opts.summarize || len(c.Reviews) == 0 {
		return
	}
	texts := make([]string, 0, len(c.Reviews))
	for _, r := range c.Reviews {
		if r.Text != "" {
			texts = append(texts, r.Text)
		}
	}
	summary, err := p.oracle.SummarizeReviews(ctx, texts)
	if err != nil {
		p.logger.Warn("review summarization failed",
			"placeId", c.PlaceID, "name", c.Name, "error", err)
		c.OverviewReview = oracle.FallbackSummary(c.UserRatingsTotal, c.Rating)
		return
	}
	c.OverviewReview = summary.Summary
	score := (summary.Sentiment + 1) / 2 * 100
	c.SentimentScore = &score
}
