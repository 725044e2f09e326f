// Package errors provides structured error reporting for the LVGL binding.
//
// Failures that cannot be returned to a caller, such as a panic raised by a
// user event handler while the native library is dispatching, are reported
// to a process-wide ErrorHandler instead.
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
	// KindNative indicates the native library rejected a call.
	KindNative
	// KindInit indicates a display or driver bootstrap failure.
	KindInit
	// KindConfig indicates an invalid configuration value.
	KindConfig
	// KindText indicates text that cannot cross the native boundary.
	KindText
	// KindTime indicates a failed time formatting request.
	KindTime
	// KindEvent indicates a failure while dispatching a widget event.
	KindEvent
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindNative:
		return "native"
	case KindInit:
		return "init"
	case KindConfig:
		return "config"
	case KindText:
		return "text"
	case KindTime:
		return "time"
	case KindEvent:
		return "event"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// LvglError is a structured error raised by the binding.
type LvglError struct {
	// Op is the operation that failed (e.g., "lvgl.Init").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Widget is the uid of the widget involved, if any.
	Widget string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LvglError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LvglError) Unwrap() error {
	return e.Err
}

// New wraps err into an LvglError. It returns nil when err is nil.
func New(op string, kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &LvglError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "lvgl.dispatch").
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

// ErrorHandler receives errors reported by the binding.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *LvglError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
