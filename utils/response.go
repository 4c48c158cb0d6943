package utils

// MessageResponse is the body of every booking outcome and not-found reply.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
