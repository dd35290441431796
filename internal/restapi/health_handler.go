package restapi

import (
	"net/http"

	"pitstop.roadtripper.org/internal/models"
)

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	response := models.NewOKResponse(map[string]string{"status": "up"}, api.Clock)
	api.sendResponse(w, r, response)
}
