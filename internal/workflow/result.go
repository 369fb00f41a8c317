package workflow

// Result is the tagged outcome of a workflow operation. Status is either
// "success" or "error"; ErrorKind carries the machine-readable error code
// when Status is "error".
type Result[T any] struct {
	Status    string `json:"status"`
	Payload   T      `json:"payload,omitempty"`
	ErrorKind string `json:"errorKind,omitempty"`
	Message   string `json:"message,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// OK builds a success result with an optional human-readable message.
func OK[T any](payload T, message string) Result[T] {
	return Result[T]{Status: StatusSuccess, Payload: payload, Message: message}
}

// Err builds an error result.
func Err[T any](kind, message string) Result[T] {
	return Result[T]{Status: StatusError, ErrorKind: kind, Message: message}
}

// IsError reports whether the result carries an error.
func (r Result[T]) IsError() bool {
	return r.Status == StatusError
}
