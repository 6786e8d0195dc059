// Package errors provides a coded error type shared by every layer of trfind.
package errors

// Always import this package as perr.

import (
	"context"
	stderrs "errors"
	"fmt"
)

// ErrorCode classifies failures. Values are stable; add sparingly.
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodeConfig is for invalid options, detected before scanning
	ErrorCodeConfig

	// ErrorCodeInput is for unreadable or empty sequence input
	ErrorCodeInput

	// ErrorCodeAlign is for failures of the pairwise alignment primitive
	ErrorCodeAlign

	// ErrorCodeOutput is for failures writing results
	ErrorCodeOutput

	// ErrorCodeCanceled is for runs interrupted by the caller
	ErrorCodeCanceled
)

func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeConfig:
		return "config"
	case ErrorCodeInput:
		return "input"
	case ErrorCodeAlign:
		return "align"
	case ErrorCodeOutput:
		return "output"
	case ErrorCodeCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// ExitCodeOf maps an ErrorCode to a process exit status.
func ExitCodeOf(c ErrorCode) int {
	switch c {
	case ErrorCodeConfig, ErrorCodeInput:
		return 2
	case ErrorCodeCanceled:
		return 130
	default:
		return 3
	}
}

// ExitCode returns the process exit status for any error; nil maps to 0.
// Context cancellation maps to 130 even when it was not wrapped by us.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if _, ok := As(err); !ok && stderrs.Is(err, context.Canceled) {
		return 130
	}
	return ExitCodeOf(CodeOf(err))
}

// Error is the structured error type.
// msg is human facing; code is machine facing; op is an optional operation tag;
// orig is the wrapped cause.
type Error struct {
	orig error
	msg  string
	code ErrorCode
	op   string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.msg
	if e.op != "" {
		msg = e.op + ": " + msg
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", msg, e.orig)
	}
	return msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// New creates an *Error with a code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with formatting
func Newf(code ErrorCode, format string, args ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a code and message. Wrapping nil returns nil.
func Wrap(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{orig: err, code: code, msg: msg}
}

// Wrapf is Wrap with formatting
func Wrapf(err error, code ErrorCode, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{orig: err, code: code, msg: fmt.Sprintf(format, args...)}
}

// Canceled wraps a context error so it keeps its exit status through the layers.
func Canceled(err error) error {
	if err == nil {
		return nil
	}
	return &Error{orig: err, code: ErrorCodeCanceled, msg: "canceled"}
}

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// WithOp attaches an operation label to an *Error (copy-on-write).
// If err isn't *Error, returns err unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// Is and Unwrap re-exported so callers need only one errors import.
var (
	Is     = stderrs.Is
	Unwrap = stderrs.Unwrap
)
