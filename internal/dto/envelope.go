package dto

import "encoding/json"

// Envelope is the wire wrapper every API response uses: { success, data }.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// ErrorBody is the error-response shape: a top-level message and optionally a
// map of field name to validation messages.
type ErrorBody struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}
