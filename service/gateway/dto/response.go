package dto

// Response is the generic envelope every gateway endpoint returns.
type Response[T any] struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   T      `json:"data,omitempty"`
}

// NewSuccessResponse wraps payload data in an ok envelope.
func NewSuccessResponse[T any](data T) Response[T] {
	return Response[T]{Status: "ok", Data: data}
}

// NewErrorResponse wraps a failure message in an error envelope.
func NewErrorResponse(message string) Response[any] {
	return Response[any]{Status: "error", Error: message}
}

// ListResponse carries a collection with its total count.
type ListResponse[T any] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}
