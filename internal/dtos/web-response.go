package dtos

type Response[T any] struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message,omitempty"`
	Data      T              `json:"data,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Errors    *ErrorResponse `json:"errors,omitempty"`
}

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
