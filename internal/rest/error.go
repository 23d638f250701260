package rest

// ErrorResponse is the JSON error envelope returned by HTTP handlers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
