package restapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pitstop.roadtripper.org/internal/models"
)

// tokenTTL is how long an issued login token stays valid.
const tokenTTL = 24 * time.Hour

// issueToken signs an HS256 token for the given user.
func (api *RestAPI) issueToken(username, secret string) (string, error) {
	now := api.Clock.Now()
	claims := jwt.MapClaims{
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// requireAuth rejects requests without a valid Bearer token: 401 when the
// token is missing, 403 when it fails verification.
func (api *RestAPI) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			api.unauthorizedResponse(w, r, "missing bearer token")
			return
		}

		secrets, err := api.Secrets.Get(r.Context())
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}

		token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
			return []byte(secrets.JWTSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(api.Clock.Now))
		if err != nil || !token.Valid {
			api.sendResponse(w, r, models.NewErrorResponse(http.StatusForbidden, "invalid token", api.Clock))
			return
		}

		next(w, r)
	}
}
