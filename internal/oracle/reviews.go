package oracle

import (
	"context"
	"fmt"
	"strings"
)

// MaxReviewsSummarized caps how many review texts go to the model per place.
const MaxReviewsSummarized = 10

// ReviewSummaryMaxChars is the requested bound on the summary length.
const ReviewSummaryMaxChars = 400

// ReviewSummary is the model's digest of a place's reviews. Sentiment is in
// [-1, 1], negative to positive.
type ReviewSummary struct {
	Summary   string  `json:"summary"`
	Sentiment float64 `json:"sentiment"`
}

const reviewPromptTemplate = `Analyze these reviews for a business and provide:
1. A %d-character summary capturing the overall experience and key highlights
2. A sentiment score from -1 (very negative) to 1 (very positive)

Reviews:
%s

Please respond in JSON format:
{
  "summary": "summary here",
  "sentiment": 0.7
}`

// SummarizeReviews sends up to MaxReviewsSummarized review texts to the
// model and parses the summary and sentiment out of its response. A
// response that defeats every extraction tier returns a *ParseError; the
// caller falls back to an unenriched candidate.
func (c *Client) SummarizeReviews(ctx context.Context, reviews []string) (*ReviewSummary, error) {
	if len(reviews) == 0 {
		return nil, fmt.Errorf("no reviews to summarize")
	}
	if len(reviews) > MaxReviewsSummarized {
		reviews = reviews[:MaxReviewsSummarized]
	}

	prompt := fmt.Sprintf(reviewPromptTemplate, ReviewSummaryMaxChars, strings.Join(reviews, "\n\n"))

	raw, err := c.complete(ctx, prompt, 0.3, 300)
	if err != nil {
		return nil, err
	}

	var summary ReviewSummary
	if err := extractJSON(raw, &summary); err != nil {
		return nil, err
	}

	// Clamp out-of-range sentiment instead of rejecting the response.
	if summary.Sentiment < -1 {
		summary.Sentiment = -1
	} else if summary.Sentiment > 1 {
		summary.Sentiment = 1
	}
	return &summary, nil
}

// FallbackSummary is the templated stand-in used when review analysis fails;
// paired with a neutral sentiment of 0.
func FallbackSummary(reviewCount int, rating float64) string {
	ratingText := "Not available"
	if rating > 0 {
		ratingText = fmt.Sprintf("%.1f", rating)
	}
	return fmt.Sprintf("Based on %d reviews. Average rating: %s.", reviewCount, ratingText)
}
