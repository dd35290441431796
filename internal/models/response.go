package models

import (
	"pitstop.roadtripper.org/internal/clock"
)

// ResponseModel is the envelope every API response is wrapped in.
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data,omitempty"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// NewOKResponse creates a successful response using the provided clock.
func NewOKResponse(data interface{}, c clock.Clock) ResponseModel {
	return NewResponse(200, data, "OK", c)
}

// NewErrorResponse creates an error response with a human-readable message.
func NewErrorResponse(code int, text string, c clock.Clock) ResponseModel {
	return NewResponse(code, nil, text, c)
}

// NewValidationErrorResponse creates a 400 response carrying per-field
// error messages.
func NewValidationErrorResponse(fieldErrors map[string]string, c clock.Clock) ResponseModel {
	return NewResponse(400, map[string]interface{}{"fieldErrors": fieldErrors}, "invalid request", c)
}

// NewResponse creates a standard response using the provided clock.
func NewResponse(code int, data interface{}, text string, c clock.Clock) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: c.NowUnixMilli(),
		Data:        data,
		Text:        text,
		Version:     2,
	}
}
