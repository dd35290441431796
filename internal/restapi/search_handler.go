package restapi

import (
	"net/http"

	"pitstop.roadtripper.org/internal/geo"
	"pitstop.roadtripper.org/internal/models"
)

type searchRequest struct {
	Query                string     `json:"query"`
	UserLocation         *geo.Point `json:"userLocation"`
	UseIntelligentSearch bool       `json:"useIntelligentSearch"`
}

func (api *RestAPI) searchHandler(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := api.decodeJSONBody(w, r, &req); err != nil {
		api.badRequestResponse(w, r, err.Error())
		return
	}
	if req.Query == "" {
		api.validationErrorResponse(w, r, map[string]string{"query": "must be provided"})
		return
	}

	results, err := api.Planner.Search(r.Context(), req.Query, req.UserLocation, req.UseIntelligentSearch)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewOKResponse(results, api.Clock))
}
