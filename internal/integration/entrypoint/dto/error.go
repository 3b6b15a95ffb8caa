// Package dto defines request and response shapes for the HTTP API.
package dto

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
