package restapi

import (
	"net/http"

	"pitstop.roadtripper.org/internal/geo"
	"pitstop.roadtripper.org/internal/models"
)

type addStopRequest struct {
	RoutePolyline   string     `json:"routePolyline"`
	CurrentLocation *geo.Point `json:"currentLocation"`
	StopQuery       string     `json:"stopQuery"`
}

func (api *RestAPI) addStopHandler(w http.ResponseWriter, r *http.Request) {
	var req addStopRequest
	if err := api.decodeJSONBody(w, r, &req); err != nil {
		api.badRequestResponse(w, r, err.Error())
		return
	}

	fieldErrors := map[string]string{}
	if req.RoutePolyline == "" {
		fieldErrors["routePolyline"] = "must be provided"
	}
	if req.CurrentLocation == nil {
		fieldErrors["currentLocation"] = "must be provided"
	}
	if req.StopQuery == "" {
		fieldErrors["stopQuery"] = "must be provided"
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	suggestions, err := api.Planner.SuggestStops(r.Context(), req.RoutePolyline, *req.CurrentLocation, req.StopQuery)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewOKResponse(suggestions, api.Clock))
}
