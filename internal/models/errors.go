package models

import "errors"

// ErrorKind classifies a failed submission
type ErrorKind int

const (
	InvalidDate ErrorKind = iota
	NonFutureTarget
	MissingHorizon
	InvalidHorizon
	MissingScenario
	InvalidLevel
	RemoteRejection
	TransportFailure
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidDate:
		return "invalid_date"
	case NonFutureTarget:
		return "non_future_target"
	case MissingHorizon:
		return "missing_horizon"
	case InvalidHorizon:
		return "invalid_horizon"
	case MissingScenario:
		return "missing_scenario"
	case InvalidLevel:
		return "invalid_level"
	case RemoteRejection:
		return "remote_rejection"
	case TransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// SubmitError is the single error type surfaced by a form submission.
// Message is what the user sees.
type SubmitError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// NewSubmitError creates a SubmitError without an underlying cause
func NewSubmitError(kind ErrorKind, message string) *SubmitError {
	return &SubmitError{Kind: kind, Message: message}
}

// WrapSubmitError creates a SubmitError carrying the underlying cause
func WrapSubmitError(kind ErrorKind, message string, err error) *SubmitError {
	return &SubmitError{Kind: kind, Message: message, Err: err}
}

func (e *SubmitError) Error() string {
	return e.Message
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// KindOf reports the ErrorKind of err, if it is (or wraps) a SubmitError
func KindOf(err error) (ErrorKind, bool) {
	var se *SubmitError
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return 0, false
}
