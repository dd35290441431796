package oracle

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// ParseError means the oracle's output could not be coerced into the
// expected JSON shape after every extraction tier failed. The raw text is
// kept for diagnosis.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no valid JSON found in oracle response (%d bytes)", len(e.Raw))
}

var (
	fencedBlockRe = regexp.MustCompile("```(?:json)?\\s*(\\{[\\s\\S]*?\\})\\s*```")
	braceSpanRe   = regexp.MustCompile(`\{[\s\S]*\}`)
)

// extractJSON pulls a JSON object out of free-form model output. The model
// is not guaranteed to return clean JSON, so three strategies run in order,
// the first success short-circuiting: direct parse, fenced code block, then
// the widest {...} span in the text.
func extractJSON(raw string, out any) error {
	for _, candidate := range jsonCandidates(raw) {
		if json.Unmarshal([]byte(candidate), out) == nil {
			return nil
		}
	}
	return &ParseError{Raw: raw}
}

func jsonCandidates(raw string) []string {
	candidates := []string{raw}
	if m := fencedBlockRe.FindStringSubmatch(raw); m != nil {
		candidates = append(candidates, m[1])
	}
	if m := braceSpanRe.FindString(raw); m != "" {
		candidates = append(candidates, m)
	}
	return candidates
}
