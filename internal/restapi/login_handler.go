package restapi

import (
	"crypto/subtle"
	"net/http"

	"pitstop.roadtripper.org/internal/models"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (api *RestAPI) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := api.decodeJSONBody(w, r, &req); err != nil {
		api.badRequestResponse(w, r, err.Error())
		return
	}
	if req.Username == "" || req.Password == "" {
		api.validationErrorResponse(w, r, map[string]string{
			"username": "must be provided",
			"password": "must be provided",
		})
		return
	}

	secrets, err := api.Secrets.Get(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(secrets.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(secrets.AdminPassword)) == 1
	if !userOK || !passOK {
		api.unauthorizedResponse(w, r, "invalid credentials")
		return
	}

	token, err := api.issueToken(req.Username, secrets.JWTSecret)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewOKResponse(loginResponse{
		Token:    token,
		Username: req.Username,
	}, api.Clock))
}
