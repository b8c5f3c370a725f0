// Package errors provides structured error handling for the Rax runtime.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for runtime operations.
var (
	// ErrNoRender indicates a render pass was requested on a component
	// that has no render function.
	ErrNoRender = errors.New("rax: no render function registered")

	// ErrNotRegistered indicates a bridge lookup for an instance id that
	// has no bound component.
	ErrNotRegistered = errors.New("rax: instance id not registered")
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindRender indicates a failed render pass.
	KindRender
	// KindLifecycle indicates a failure inside a lifecycle callback.
	KindLifecycle
	// KindHost indicates a host bridge or codec error.
	KindHost
	// KindConfig indicates invalid compiler-emitted configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindRender:
		return "render"
	case KindLifecycle:
		return "lifecycle"
	case KindHost:
		return "host"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// RaxError represents a structured error in the Rax runtime.
type RaxError struct {
	// Op is the operation that failed (e.g., "runtime.Component.Mount").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Component is the type name of the component's behavior, if known.
	Component string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RaxError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s [%s] component=%s: %v", e.Op, e.Kind, e.Component, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RaxError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "runtime.Scheduler.Flush").
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

// RenderError represents a failure during a component render pass.
type RenderError struct {
	// Component is the type name of the behavior whose render failed.
	Component string
	// Phase is the transition during which the render ran ("mount" or "update").
	Phase string
	// Err is the underlying error (ErrNoRender for a missing render function).
	Err error
	// Recovered is the panic value when the render function panicked.
	Recovered any
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RenderError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic rendering %s during %s: %v", e.Component, e.Phase, e.Recovered)
	}
	return fmt.Sprintf("render of %s during %s failed: %v", e.Component, e.Phase, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// TeardownError represents a panic raised by a hook teardown during unmount.
// Teardowns after the failing one still run; each failure is reported
// separately.
type TeardownError struct {
	// Component is the type name of the behavior being unmounted.
	Component string
	// Slot is the hook slot index whose teardown panicked.
	Slot int
	// Recovered is the panic value.
	Recovered any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *TeardownError) Error() string {
	return fmt.Sprintf("panic in hook teardown %d of %s: %v", e.Slot, e.Component, e.Recovered)
}

// ErrorHandler receives errors reported by the Rax runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *RaxError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleRenderError is called when a component render pass fails.
	HandleRenderError(err *RenderError)
	// HandleTeardownError is called when a hook teardown panics during unmount.
	HandleTeardownError(err *TeardownError)
}
