package restapi

import (
	"net/http"

	"pitstop.roadtripper.org/internal/maps"
	"pitstop.roadtripper.org/internal/models"
)

type routeStop struct {
	Name     string        `json:"name"`
	Geometry maps.Geometry `json:"geometry"`
}

func (s routeStop) hasLocation() bool {
	return s.Geometry.Location.Lat != 0 || s.Geometry.Location.Lng != 0
}

type addStopToRouteRequest struct {
	Origin      endpoint  `json:"origin"`
	Destination endpoint  `json:"destination"`
	Stop        routeStop `json:"stop"`
}

// addStopToRouteHandler re-routes origin to destination with the chosen
// stop as a waypoint.
func (api *RestAPI) addStopToRouteHandler(w http.ResponseWriter, r *http.Request) {
	var req addStopToRouteRequest
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
	if !req.Stop.hasLocation() {
		fieldErrors["stop"] = "must include geometry.location"
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	waypoint := maps.FormatWaypoint(req.Stop.Geometry.Location.Point())
	route, err := api.Maps.Directions(r.Context(), req.Origin.locationString(), req.Destination.locationString(), []string{waypoint})
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
