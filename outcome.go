package nina

import "net/http"

// Status classifies the result of a business operation. The classification is
// transport agnostic; HTTPStatus gives the canonical HTTP mapping.
type Status int

const (
	// Success outcomes
	StatusOk Status = iota
	StatusCreated
	StatusNoContent

	// Failure outcomes
	StatusBadRequest
	StatusNotFound
	StatusConflict
	StatusUnauthorized
	StatusInternalError
)

// HTTPStatus maps a Status to its HTTP status code.
func (s Status) HTTPStatus() int {
	switch s {
	case StatusOk:
		return http.StatusOK
	case StatusCreated:
		return http.StatusCreated
	case StatusNoContent:
		return http.StatusNoContent
	case StatusNotFound:
		return http.StatusNotFound
	case StatusConflict:
		return http.StatusConflict
	case StatusUnauthorized:
		return http.StatusUnauthorized
	case StatusInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusCreated:
		return "created"
	case StatusNoContent:
		return "no_content"
	case StatusBadRequest:
		return "bad_request"
	case StatusNotFound:
		return "not_found"
	case StatusConflict:
		return "conflict"
	case StatusUnauthorized:
		return "unauthorized"
	case StatusInternalError:
		return "internal_error"
	default:
		return "unknown"
	}
}

// Empty is the payload type for outcomes that carry no data (update, delete).
type Empty struct{}

// Outcome is the result of a business operation. Expected failures
// (not found, conflict, bad input, unauthorized) travel as failed outcomes
// rather than errors; only unexpected conditions propagate as errors and are
// converted at the transport boundary.
//
// Either the success side (IsSuccess + Data) or the failure side
// (ErrorMessage, optionally ValidationErrors) is populated, never both.
type Outcome[T any] struct {
	IsSuccess        bool             `json:"is_success"`
	Data             T                `json:"data,omitempty"`
	Status           Status           `json:"status"`
	ErrorMessage     string           `json:"error_message,omitempty"`
	ValidationErrors ValidationErrors `json:"validation_errors,omitempty"`
}

// Success returns an Ok outcome carrying data.
func Success[T any](data T) Outcome[T] {
	return Outcome[T]{IsSuccess: true, Data: data, Status: StatusOk}
}

// Created returns a Created outcome carrying data.
func Created[T any](data T) Outcome[T] {
	return Outcome[T]{IsSuccess: true, Data: data, Status: StatusCreated}
}

// NoContent returns a successful outcome with no data.
func NoContent[T any]() Outcome[T] {
	return Outcome[T]{IsSuccess: true, Status: StatusNoContent}
}

// Failure returns a failed outcome with the given message and classification.
func Failure[T any](message string, status Status) Outcome[T] {
	return Outcome[T]{IsSuccess: false, ErrorMessage: message, Status: status}
}

// ValidationFailure returns a BadRequest outcome carrying the per-field error
// map produced by the validation pipeline.
func ValidationFailure[T any](errs ValidationErrors) Outcome[T] {
	return Outcome[T]{
		IsSuccess:        false,
		Status:           StatusBadRequest,
		ErrorMessage:     MsgValidationFailed,
		ValidationErrors: errs,
	}
}

// Failed reports whether the outcome is a failure.
func (o Outcome[T]) Failed() bool {
	return !o.IsSuccess
}
