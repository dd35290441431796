package restapi

import (
	"net/http"
	"strings"

	"pitstop.roadtripper.org/internal/geo"
	"pitstop.roadtripper.org/internal/maps"
	"pitstop.roadtripper.org/internal/models"
)

// AutocompleteBiasRadiusM is the bias radius around the user's location
// for autocomplete suggestions.
const AutocompleteBiasRadiusM = 50000

type autocompleteRequest struct {
	Input        string     `json:"input"`
	UserLocation *geo.Point `json:"userLocation"`
}

type autocompleteResult struct {
	Predictions []maps.Prediction `json:"predictions"`
}

func (api *RestAPI) autocompleteHandler(w http.ResponseWriter, r *http.Request) {
	var req autocompleteRequest
	if err := api.decodeJSONBody(w, r, &req); err != nil {
		api.badRequestResponse(w, r, err.Error())
		return
	}

	// Inputs this short only produce noise; skip the upstream call.
	if len(strings.TrimSpace(req.Input)) < 2 {
		api.sendResponse(w, r, models.NewOKResponse(autocompleteResult{Predictions: []maps.Prediction{}}, api.Clock))
		return
	}

	var bias *maps.LocationBias
	if req.UserLocation != nil {
		bias = &maps.LocationBias{Location: *req.UserLocation, RadiusM: AutocompleteBiasRadiusM}
	}

	predictions, err := api.Maps.Autocomplete(r.Context(), req.Input, bias)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if predictions == nil {
		predictions = []maps.Prediction{}
	}

	api.sendResponse(w, r, models.NewOKResponse(autocompleteResult{Predictions: predictions}, api.Clock))
}
