package maps

import "pitstop.roadtripper.org/internal/geo"

// LatLng mirrors the provider's geometry.location object. It converts to
// geo.Point at the package boundary so the rest of the system works with a
// single coordinate type.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (l LatLng) Point() geo.Point {
	return geo.Point{Lat: l.Lat, Lng: l.Lng}
}

type Geometry struct {
	Location LatLng `json:"location"`
}

type Photo struct {
	Height         int    `json:"height"`
	Width          int    `json:"width"`
	PhotoReference string `json:"photo_reference"`
}

type Review struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
	Time       int64   `json:"time"`
}

// Place is a record from Text Search or Nearby Search.
type Place struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Geometry         Geometry `json:"geometry"`
	Rating           float64  `json:"rating,omitempty"`
	UserRatingsTotal int      `json:"user_ratings_total,omitempty"`
	Types            []string `json:"types,omitempty"`
	FormattedAddress string   `json:"formatted_address,omitempty"`
	Vicinity         string   `json:"vicinity,omitempty"`
	Photos           []Photo  `json:"photos,omitempty"`
	BusinessStatus   string   `json:"business_status,omitempty"`
}

// PlaceDetails is the enriched record from the Place Details endpoint.
type PlaceDetails struct {
	PlaceID              string   `json:"place_id"`
	Name                 string   `json:"name"`
	Geometry             Geometry `json:"geometry"`
	Rating               float64  `json:"rating,omitempty"`
	UserRatingsTotal     int      `json:"user_ratings_total,omitempty"`
	Types                []string `json:"types,omitempty"`
	FormattedAddress     string   `json:"formatted_address,omitempty"`
	Website              string   `json:"website,omitempty"`
	FormattedPhoneNumber string   `json:"formatted_phone_number,omitempty"`
	Photos               []Photo  `json:"photos,omitempty"`
	Reviews              []Review `json:"reviews,omitempty"`
}

type placesResponse struct {
	Results      []Place `json:"results"`
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

type placeDetailsResponse struct {
	Result       *PlaceDetails `json:"result"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

// Prediction is an autocomplete suggestion.
type Prediction struct {
	Description          string   `json:"description"`
	PlaceID              string   `json:"place_id"`
	Types                []string `json:"types,omitempty"`
	StructuredFormatting struct {
		MainText      string `json:"main_text"`
		SecondaryText string `json:"secondary_text"`
	} `json:"structured_formatting"`
}

type autocompleteResponse struct {
	Predictions  []Prediction `json:"predictions"`
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

type TextValue struct {
	Text  string `json:"text"`
	Value int64  `json:"value"`
}

type Step struct {
	Distance         TextValue `json:"distance"`
	Duration         TextValue `json:"duration"`
	StartLocation    LatLng    `json:"start_location"`
	EndLocation      LatLng    `json:"end_location"`
	HTMLInstructions string    `json:"html_instructions,omitempty"`
	Polyline         Polyline  `json:"polyline"`
}

type Leg struct {
	Distance      TextValue `json:"distance"`
	Duration      TextValue `json:"duration"`
	StartAddress  string    `json:"start_address,omitempty"`
	EndAddress    string    `json:"end_address,omitempty"`
	StartLocation LatLng    `json:"start_location"`
	EndLocation   LatLng    `json:"end_location"`
	Steps         []Step    `json:"steps"`
}

type Polyline struct {
	Points string `json:"points"`
}

// Route is a single directions result with its overview polyline.
type Route struct {
	Summary          string   `json:"summary,omitempty"`
	Legs             []Leg    `json:"legs"`
	OverviewPolyline Polyline `json:"overview_polyline"`
	WaypointOrder    []int    `json:"waypoint_order,omitempty"`
}

type directionsResponse struct {
	Routes       []Route `json:"routes"`
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
}
