// Package apperr carries typed, status-aware errors between the adapters
// and the HTTP layer. Handlers decide what the customer sees from the Code;
// the wrapped cause only ever goes to the logs.
package apperr

import (
	"errors"
	"net/http"
)

// Error represents a typed, status-aware application error.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	return "error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches a cause to a copy of base. The base's user-facing message is
// kept unless an override is given; the cause stays internal.
func Wrap(err error, base *Error, message string) *Error {
	if err == nil {
		return nil
	}
	if base == nil {
		base = ErrInternal
	}
	copy := *base
	if message != "" {
		copy.Message = message
	}
	copy.Err = err
	return &copy
}

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

func Status(err error) int {
	if e, ok := As(err); ok && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

func Code(err error) string {
	if e, ok := As(err); ok && e.Code != "" {
		return e.Code
	}
	return "internal_error"
}

func Message(err error) string {
	if e, ok := As(err); ok {
		if e.Message != "" {
			return e.Message
		}
		if e.Err != nil {
			return e.Err.Error()
		}
		return e.Code
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// Payload is the JSON body for an error response.
func Payload(err error) map[string]any {
	if err == nil {
		return map[string]any{}
	}
	return map[string]any{
		"code":    Code(err),
		"message": Message(err),
	}
}

// Sentinels for the three failure classes a search can hit, plus internal.
var (
	ErrValidation = New("validation_error", http.StatusBadRequest, "Ingresá un número de documento válido.")
	ErrNotFound   = New("not_found", http.StatusNotFound, "No encontramos una venta asociada a ese documento.")
	ErrUpstream   = New("upstream_error", http.StatusBadGateway, "Estamos teniendo problemas, probá de nuevo más tarde.")
	ErrInternal   = New("internal_error", http.StatusInternalServerError, "Estamos teniendo problemas, probá de nuevo más tarde.")
)
