package restapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"pitstop.roadtripper.org/internal/geo"
	"pitstop.roadtripper.org/internal/maps"
	"pitstop.roadtripper.org/internal/models"
)

// endpoint is a route endpoint the client may send either as an address
// string or as a {lat,lng} object.
type endpoint struct {
	address string
	point   *geo.Point
}

func (e *endpoint) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.address = s
		return nil
	}
	var p geo.Point
	if err := json.Unmarshal(data, &p); err == nil {
		e.point = &p
		return nil
	}
	return errors.New("endpoint must be an address string or a lat/lng object")
}

func (e endpoint) isZero() bool {
	return e.address == "" && e.point == nil
}

func (e endpoint) locationString() string {
	if e.point != nil {
		return maps.FormatWaypoint(*e.point)
	}
	return e.address
}

type directionsRequest struct {
	Origin      endpoint `json:"origin"`
	Destination endpoint `json:"destination"`
}

type directionsResult struct {
	Polyline maps.Polyline `json:"polyline"`
	Legs     []maps.Leg    `json:"legs"`
	Route    *maps.Route   `json:"route"`
}

func (api *RestAPI) directionsHandler(w http.ResponseWriter, r *http.Request) {
	var req directionsRequest
	if err := api.decodeJSONBody(w, r, &req); err != nil {
		api.badRequestResponse(w, r, err.Error())
		return
	}

	fieldErrors := map[string]string{}
	if req.Origin.isZero() {
		fieldErrors["origin"] = "must be provided"
	}
	if req.Destination.isZero() {
		fieldErrors["destination"] = "must be provided"
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	route, err := api.Maps.Directions(r.Context(), req.Origin.locationString(), req.Destination.locationString(), nil)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewOKResponse(directionsResult{
		Polyline: route.OverviewPolyline,
		Legs:     route.Legs,
		Route:    route,
	}, api.Clock))
}
