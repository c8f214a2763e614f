package constants

import (
	"fmt"
	"net/http"
)

// CodedError carries the HTTP status code a failure should surface with.
// The api error handler unwraps chains looking for one.
type CodedError struct {
	code  int
	msg   string
	cause error
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Code() int { return e.code }

func (e *CodedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.msg, e.cause.Error())
	}
	return e.msg
}

func (e *CodedError) Unwrap() error { return e.cause }

// WithCause returns a copy of e wrapping cause, so the sentinel itself
// stays comparable with errors.Is.
func (e *CodedError) WithCause(cause error) *CodedError {
	return &CodedError{code: e.code, msg: e.msg, cause: cause}
}

// Is lets a wrapped copy match its sentinel.
func (e *CodedError) Is(target error) bool {
	ce, ok := target.(*CodedError)
	return ok && ce.code == e.code && ce.msg == e.msg
}

var (
	ErrValidationFailure         = NewCodedError(http.StatusBadRequest, "validation failure")
	ErrAttachmentMissing         = NewCodedError(http.StatusBadRequest, "required attachment missing")
	ErrMalformedRowData          = NewCodedError(http.StatusBadRequest, "malformed row data")
	ErrInvalidContinuationState  = NewCodedError(http.StatusBadRequest, "invalid continuation state")
	ErrStepOutOfOrder            = NewCodedError(http.StatusConflict, "registration step out of order")
	ErrDBNotFound                = NewCodedError(http.StatusNotFound, "not found")
	ErrUnauthorized              = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrMissingAuthCookie         = NewCodedError(http.StatusUnauthorized, "missing auth cookie")
	ErrPersistenceFailure        = NewCodedError(http.StatusInternalServerError, "persistence failure")
)
