package dto

// APIResponse is the envelope every gradebook endpoint returns and the
// shape the gradebook client maps every HTTP outcome into.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func OK[T any](data T) APIResponse[T] {
	return APIResponse[T]{Success: true, Data: data}
}

func Fail[T any](message string) APIResponse[T] {
	return APIResponse[T]{Success: false, Message: message}
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
