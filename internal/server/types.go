package server

// APIResponse is the envelope used by the operational endpoints.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// errorResponse matches the {"message": ...} shape of the user API.
type errorResponse struct {
	Message string `json:"message"`
}
