// Package errs defines the download error taxonomy. Every error carries
// a technical message for logs and a separate user-presentable message
// safe to show to non-technical users. Cancellation is modelled as an
// outcome here but is not treated as an error by the coordinator.
package errs

import "errors"

// Code identifies the error category
type Code string

const (
	CodeAdmissionRejected  Code = "ADMISSION_REJECTED"
	CodeContentUnavailable Code = "CONTENT_UNAVAILABLE"
	CodeTransportFailure   Code = "TRANSPORT_FAILURE"
	CodeGenericFailure     Code = "GENERIC_FAILURE"
	CodeCancelled          Code = "CANCELLED"
)

// Error is a categorized download error with a user-facing message
type Error struct {
	Code        Code
	Message     string // technical message for logging
	UserMessage string // message safe to display
	Cause       error
}

// Error returns the technical message
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Cause
}

// AdmissionRejected reports a start request refused before any work began
func AdmissionRejected(message, userMessage string) *Error {
	return &Error{
		Code:        CodeAdmissionRejected,
		Message:     message,
		UserMessage: userMessage,
	}
}

// ContentUnavailable reports content that is private, removed or missing
func ContentUnavailable(cause error) *Error {
	return &Error{
		Code:        CodeContentUnavailable,
		Message:     "content unavailable: " + cause.Error(),
		UserMessage: "The content is not available or has been removed.",
		Cause:       cause,
	}
}

// Transport reports a network or connection failure
func Transport(cause error) *Error {
	return &Error{
		Code:        CodeTransportFailure,
		Message:     "transport failure: " + cause.Error(),
		UserMessage: "Connection error. Check your internet connection and try again.",
		Cause:       cause,
	}
}

// Generic reports any other download failure
func Generic(cause error) *Error {
	return &Error{
		Code:        CodeGenericFailure,
		Message:     cause.Error(),
		UserMessage: "The download failed. Please try again.",
		Cause:       cause,
	}
}

// Cancelled reports a download that unwound after a cancel signal
func Cancelled() *Error {
	return &Error{
		Code:        CodeCancelled,
		Message:     "download cancelled by user",
		UserMessage: "Download cancelled.",
	}
}

// IsCancelled reports whether err is a cancellation outcome
func IsCancelled(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeCancelled
}

// CodeOf returns the taxonomy code of err, or CodeGenericFailure for
// errors from outside the taxonomy.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeGenericFailure
}

// UserMessage extracts the user-presentable message from err, falling
// back to the raw diagnostic when none was supplied.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.UserMessage != "" {
		return e.UserMessage
	}
	return err.Error()
}
