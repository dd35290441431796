package restapi

import (
	"net/http"

	"pitstop.roadtripper.org/internal/maps"
	"pitstop.roadtripper.org/internal/models"
)

type recalculateRouteRequest struct {
	Origin      endpoint    `json:"origin"`
	Destination endpoint    `json:"destination"`
	Stops       []routeStop `json:"stops"`
}

// recalculateRouteHandler re-routes origin to destination through every
// remaining stop, in order.
func (api *RestAPI) recalculateRouteHandler(w http.ResponseWriter, r *http.Request) {
	var req recalculateRouteRequest
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
	for _, stop := range req.Stops {
		if !stop.hasLocation() {
			fieldErrors["stops"] = "every stop must include geometry.location"
			break
		}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	waypoints := make([]string, len(req.Stops))
	for i, stop := range req.Stops {
		waypoints[i] = maps.FormatWaypoint(stop.Geometry.Location.Point())
	}

	route, err := api.Maps.Directions(r.Context(), req.Origin.locationString(), req.Destination.locationString(), waypoints)
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
