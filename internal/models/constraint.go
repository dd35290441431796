package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// DetourPreference values the oracle may produce. Free-form values such as
// "15-minute" pass through untouched; only the three canonical levels get
// constants.
const (
	DetourMinimal  = "minimal"
	DetourModerate = "moderate"
	DetourAny      = "any"
)

// Constraint is the structured stop request produced by the language-model
// oracle. The core consumes it but does not own it, so decoding is
// defensive: the oracle occasionally emits strings like "halfway" or "now"
// where a number is expected, and those coerce to nil rather than failing
// the request.
type Constraint struct {
	Type             string   `json:"type"`
	Timing           *float64 `json:"timing"`
	Distance         *float64 `json:"distance"`
	Location         *string  `json:"location"`
	DetourPreference string   `json:"detourPreference"`
	Features         []string `json:"features,omitempty"`
	DurationMin      *float64 `json:"duration,omitempty"`
}

func (c *Constraint) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type             string          `json:"type"`
		Timing           json.RawMessage `json:"timing"`
		Distance         json.RawMessage `json:"distance"`
		Location         *string         `json:"location"`
		DetourPreference string          `json:"detourPreference"`
		Features         []string        `json:"features"`
		DurationMin      json.RawMessage `json:"duration"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.Type = raw.Type
	c.Timing = coerceNonNegative(raw.Timing)
	c.Distance = coerceNonNegative(raw.Distance)
	c.Location = raw.Location
	c.DetourPreference = raw.DetourPreference
	c.Features = raw.Features
	c.DurationMin = coerceNonNegative(raw.DurationMin)
	return nil
}

// HasLocation reports whether a named location is present and non-blank.
func (c *Constraint) HasLocation() bool {
	return c.Location != nil && strings.TrimSpace(*c.Location) != ""
}

// HasDistance reports whether a positive distance constraint is present.
func (c *Constraint) HasDistance() bool {
	return c.Distance != nil && *c.Distance > 0
}

// HasTiming reports whether a positive timing constraint is present.
func (c *Constraint) HasTiming() bool {
	return c.Timing != nil && *c.Timing > 0
}

// coerceNonNegative parses a JSON value that should be a non-negative
// number. Numeric strings ("2", "1.5") are accepted; anything else,
// including negative values, coerces to nil.
func coerceNonNegative(raw json.RawMessage) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n < 0 {
			return nil
		}
		return &n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && parsed >= 0 {
			return &parsed
		}
	}
	return nil
}
