package planner

import "strings"

// Feature match scoring. Name hits weigh more than type hits, which weigh
// more than address hits.
const (
	featureNameScore    = 2.0
	featureTypeScore    = 1.0
	featureAddressScore = 0.5
)

// FeatureFilterPool caps how many route-sorted candidates the feature
// filter inspects before the keep cut.
const FeatureFilterPool = 20

// matchFeatures scores a candidate against the requested features using
// case-insensitive substring matching, and records which features hit.
func matchFeatures(c *Candidate, features []string) {
	if len(features) == 0 {
		return
	}
	name := strings.ToLower(c.Name)
	address := strings.ToLower(c.FormattedAddress)
	types := make([]string, len(c.Types))
	for i, t := range c.Types {
		types[i] = strings.ToLower(t)
	}

	var score float64
	var matched []string
	for _, f := range features {
		needle := strings.ToLower(strings.TrimSpace(f))
		if needle == "" {
			continue
		}
		switch {
		case strings.Contains(name, needle):
			score += featureNameScore
			matched = append(matched, f)
		case containsAny(types, needle):
			score += featureTypeScore
			matched = append(matched, f)
		case strings.Contains(address, needle):
			score += featureAddressScore
			matched = append(matched, f)
		}
	}
	c.FeatureMatchScore = score
	c.MatchedFeatures = matched
}

func containsAny(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}

// filterByFeatures keeps candidates whose name or types preliminarily match
// at least one requested feature. When nothing matches, the original top
// candidates are kept instead so a picky query still yields suggestions.
func filterByFeatures(candidates []*Candidate, features []string, keep int) []*Candidate {
	pool := truncate(candidates, FeatureFilterPool)
	if len(features) == 0 {
		return truncate(pool, keep)
	}

	var matched []*Candidate
	for _, c := range pool {
		if preliminaryFeatureMatch(c, features) {
			matched = append(matched, c)
		}
	}
	if len(matched) == 0 {
		return truncate(pool, keep)
	}
	return truncate(matched, keep)
}

// preliminaryFeatureMatch is the cheap pre-enrichment check: name and types
// only, since the detailed fields are not fetched yet.
func preliminaryFeatureMatch(c *Candidate, features []string) bool {
	name := strings.ToLower(c.Name)
	for _, f := range features {
		needle := strings.ToLower(strings.TrimSpace(f))
		if needle == "" {
			continue
		}
		if strings.Contains(name, needle) {
			return true
		}
		for _, t := range c.Types {
			if strings.Contains(strings.ToLower(t), needle) {
				return true
			}
		}
	}
	return false
}

func truncate(candidates []*Candidate, n int) []*Candidate {
	if len(candidates) > n {
		return candidates[:n]
	}
	return candidates
}
