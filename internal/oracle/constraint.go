package oracle

import (
	"context"
	"fmt"

	"pitstop.roadtripper.org/internal/models"
)

const constraintPromptTemplate = `Parse this stop request along a route: %q.
Extract:
- type: The type of place/business (e.g., "restaurant", "gas station", "coffee shop")
- timing: Time constraint in hours from start (e.g., 2 for "after 2hrs", null if no timing)
- distance: Distance constraint in kilometers from start (e.g., 300 for "after 300km", null if no distance)
- location: Specific location mentioned (e.g., "Kolaghat", "Durgapur", null if no location)
- detourPreference: preference for detour ("minimal", "moderate", "any")
- features: specific amenities or qualities requested (omit if none)

Examples:
- "Breakfast after 2hrs" -> {"type": "breakfast restaurant", "timing": 2, "distance": null, "location": null, "detourPreference": "minimal"}
- "Gas station in 1 hour" -> {"type": "gas station", "timing": 1, "distance": null, "location": null, "detourPreference": "minimal"}
- "Fuel stop after 300 km" -> {"type": "gas station", "timing": null, "distance": 300, "location": null, "detourPreference": "minimal"}
- "Restaurant after 150 kilometers" -> {"type": "restaurant", "timing": null, "distance": 150, "location": null, "detourPreference": "minimal"}
- "Coffee shop nearby" -> {"type": "coffee shop", "timing": null, "distance": null, "location": null, "detourPreference": "minimal"}
- "Breakfast near Kolaghat" -> {"type": "breakfast restaurant", "timing": null, "distance": null, "location": "Kolaghat", "detourPreference": "minimal"}
- "Lunch in Durgapur after 3hrs" -> {"type": "lunch restaurant", "timing": 3, "distance": null, "location": "Durgapur", "detourPreference": "minimal"}
- "Gas station after 200km near Durgapur" -> {"type": "gas station", "timing": null, "distance": 200, "location": "Durgapur", "detourPreference": "minimal"}
- "Find a coffee shop with outdoor seating 10 minutes off my route." -> {"type": "coffee shop", "timing": null, "distance": null, "location": null, "detourPreference": "moderate", "features": ["outdoor seating"]}
- "Show me gas stations with clean restrooms along my drive to Kuala Lumpur." -> {"type": "gas station", "timing": null, "distance": null, "location": "Kuala Lumpur", "detourPreference": "minimal", "features": ["clean restrooms"]}
- "Any scenic viewpoints or nature trails near my route?" -> {"type": "scenic stop", "timing": null, "distance": null, "location": null, "detourPreference": "minimal", "features": ["viewpoint", "nature trail"]}
- "Find a lake or beach I can detour to for 30 minutes." -> {"type": "lake or beach", "timing": null, "distance": null, "location": null, "detourPreference": "moderate", "duration": 30}
- "Show vegetarian restaurants with parking near my route." -> {"type": "vegetarian restaurant", "timing": null, "distance": null, "location": null, "detourPreference": "minimal", "features": ["parking"]}
- "Find a kid-friendly restaurant with a play area on the way." -> {"type": "restaurant", "timing": null, "distance": null, "location": null, "detourPreference": "minimal", "features": ["kid-friendly", "play area"]}
- "Any halal food options close to my current path?" -> {"type": "halal restaurant", "timing": null, "distance": null, "location": null, "detourPreference": "minimal"}
- "Suggest budget hotels near my route for an overnight stay." -> {"type": "budget hotel", "timing": null, "distance": null, "location": null, "detourPreference": "minimal"}
- "Any motels with EV charging stations on the way?" -> {"type": "motel", "timing": null, "distance": null, "location": null, "detourPreference": "minimal", "features": ["EV charging"]}
- "Suggest a pet-friendly cafe on the way." -> {"type": "cafe", "timing": null, "distance": null, "location": null, "detourPreference": "minimal", "features": ["pet-friendly"]}
Respond only with valid JSON.`

// ParseConstraint asks the model to turn a free-text stop query into a
// structured constraint. Raw model output that fails every extraction tier
// returns a *ParseError carrying the text.
func (c *Client) ParseConstraint(ctx context.Context, stopQuery string) (*models.Constraint, string, error) {
	prompt := fmt.Sprintf(constraintPromptTemplate, stopQuery)

	raw, err := c.complete(ctx, prompt, 0.2, 0)
	if err != nil {
		return nil, "", err
	}

	var constraint models.Constraint
	if err := extractJSON(raw, &constraint); err != nil {
		return nil, raw, err
	}
	return &constraint, raw, nil
}

const rewritePromptTemplate = `You are a location search assistant. The user searched for: %q

If this query refers to a specific place, landmark, or location concept, extract the actual place name that should be searched on a map.

Examples:
- "Capital of India" -> "New Delhi, India"
- "Highest mountain in the world" -> "Mount Everest, Nepal"
- "Famous tower in Paris" -> "Eiffel Tower, Paris"
- "Best pizza place" -> "pizza restaurant" (keep generic food searches as is)
- "Coffee shops nearby" -> "coffee shop" (keep generic business searches as is)

Rules:
1. If the query refers to a specific well-known location, landmark, or geographical feature, return the actual place name
2. If it's a generic business/service search, return the simplified search term
3. If it's already a place name, return it as is
4. Always include country/region context when helpful

Respond with only the optimized search term, nothing else.`

// RewriteSearchQuery asks the model to turn an ambiguous search into a
// directly searchable place name. Used when a text search comes back empty.
func (c *Client) RewriteSearchQuery(ctx context.Context, query string) (string, error) {
	return c.complete(ctx, fmt.Sprintf(rewritePromptTemplate, query), 0.1, 100)
}
