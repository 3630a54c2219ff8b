// Package errors provides structured error reporting for swipe rows and the
// tools built on them.
//
// The engine itself never fails on well-typed input. What it reports here is
// malformed configuration (clamped, then reported once), panics raised by
// collaborator callbacks (recovered so the row stays consistent), and
// decoding failures in configuration and trace files.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates malformed options that were clamped.
	KindConfig
	// KindCallback indicates a collaborator callback failure.
	KindCallback
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindParsing indicates a configuration or trace decoding failure.
	KindParsing
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindCallback:
		return "callback"
	case KindPanic:
		return "panic"
	case KindParsing:
		return "parsing"
	default:
		return "unknown"
	}
}

// SwipeError represents a structured error raised around a swipe row.
type SwipeError struct {
	// Op is the operation that failed (e.g., "swipe.NewRow").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Row identifies the row involved, if any.
	Row string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SwipeError) Error() string {
	if e.Row != "" {
		return fmt.Sprintf("%s [%s] row=%s: %v", e.Op, e.Kind, e.Row, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SwipeError) Unwrap() error {
	return e.Err
}

// FieldError describes one invalid configuration field.
type FieldError struct {
	// Field is the option name as it appears in YAML.
	Field string
	// Value is the rejected value.
	Value any
	// Reason explains the constraint.
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s=%v: %s", e.Field, e.Value, e.Reason)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "swipe.Action.OnTrigger").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a failure to decode a configuration or trace file.
type ParseError struct {
	// Source is the file or stream name.
	Source string
	// DataType is the expected document type.
	DataType string
	// Err is the decoder error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from %s: %v", e.DataType, e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by swipe rows and tools.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *SwipeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
