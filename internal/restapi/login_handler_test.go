package restapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitstop.roadtripper.org/internal/models"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	handler(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) models.ResponseModel {
	t.Helper()
	var envelope models.ResponseModel
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	return envelope
}

func TestLoginSuccess(t *testing.T) {
	api := createTestApi(testApiOptions{})

	rr := postJSON(t, api.loginHandler, "/login", `{"username":"admin","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	envelope := decodeEnvelope(t, rr)
	data := envelope.Data.(map[string]any)
	tokenString := data["token"].(string)
	require.NotEmpty(t, tokenString)
	assert.Equal(t, "admin", data["username"])

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return []byte(testSecrets.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(api.Clock.Now))
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["username"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Equal(t, api.Clock.Now().Add(24*time.Hour).Unix(), exp.Unix())
}

func TestLoginWrongCredentials(t *testing.T) {
	api := createTestApi(testApiOptions{})

	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"username":"admin","password":"wrong"}`},
		{"wrong username", `{"username":"root","password":"hunter2"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postJSON(t, api.loginHandler, "/login", tt.body)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestLoginMissingFields(t *testing.T) {
	api := createTestApi(testApiOptions{})

	rr := postJSON(t, api.loginHandler, "/login", `{"username":"admin"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	envelope := decodeEnvelope(t, rr)
	data := envelope.Data.(map[string]any)
	assert.Contains(t, data, "fieldErrors")
}

func TestLoginEmptyBody(t *testing.T) {
	api := createTestApi(testApiOptions{})

	rr := postJSON(t, api.loginHandler, "/login", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
