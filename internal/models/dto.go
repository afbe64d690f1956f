package models

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RateLimitErrorResponse is returned on 429 responses together with the
// Retry-After header.
type RateLimitErrorResponse struct {
	Error      string  `json:"error"`
	RetryAfter float64 `json:"retry_after"`
}
