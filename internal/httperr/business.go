package httperr

import (
	"errors"
	"net/http"
	"strings"
)

type Kind int

const (
	KindDecode Kind = iota + 1
	KindValidation
	KindConflict
	KindForbidden
	KindNotFound
	KindUnauthenticated
	KindTooManyRequests
)

func (k Kind) Status() int {
	switch k {
	case KindDecode, KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// FieldViolation is one failed constraint on one input field.
type FieldViolation struct {
	Field   string
	Message string
}

// BusinessError is an expected failure that maps onto a client-facing status.
type BusinessError struct {
	Kind       Kind
	Message    string
	Violations []FieldViolation
	Err        error
}

func (e BusinessError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e BusinessError) Unwrap() error {
	return e.Err
}

// ErrDecode wraps a request body that could not be deserialized.
func ErrDecode(err error) error {
	return BusinessError{Kind: KindDecode, Message: "invalid request body", Err: err}
}

// ErrValidation aggregates every violation into a single error whose message
// lists them in order.
func ErrValidation(violations []FieldViolation) error {
	msgs := make([]string, 0, len(violations))
	for _, v := range violations {
		msgs = append(msgs, v.Message)
	}
	return BusinessError{
		Kind:       KindValidation,
		Message:    strings.Join(msgs, "; "),
		Violations: violations,
	}
}

func ErrConflict(message string) error {
	return BusinessError{Kind: KindConflict, Message: message}
}

func ErrForbidden() error {
	return BusinessError{Kind: KindForbidden, Message: MessageForbidden}
}

func ErrNotFound(message string) error {
	return BusinessError{Kind: KindNotFound, Message: message}
}

func ErrUnauthenticated(message string) error {
	return BusinessError{Kind: KindUnauthenticated, Message: message}
}

func ErrTooManyRequests(message string) error {
	return BusinessError{Kind: KindTooManyRequests, Message: message}
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}

func IsBusiness(err error, kind Kind) bool {
	be, ok := AsBusiness(err)
	return ok && be.Kind == kind
}
