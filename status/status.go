// Package status provides Result, a success/failure sentinel return value
// carrying an optional diagnostic message. It lets call sites branch on an
// outcome and read a human-readable diagnostic without using error
// propagation for expected, non-exceptional failures.
package status

import "fmt"

// Result reports the outcome of an operation. The success/failure identity
// is fixed at construction; Message may be set or overwritten afterwards.
// The zero value is a failure with no message.
type Result struct {
	ok bool

	// Message is an optional human-readable diagnostic. By convention a
	// failure's message is also logged by whoever constructs it, before
	// the Result is returned.
	Message string
}

// Success returns a succeeded Result. The message is optional and may be
// empty.
func Success(message string) Result {
	return Result{ok: true, Message: message}
}

// Failure returns a failed Result carrying a diagnostic message.
func Failure(message string) Result {
	return Result{Message: message}
}

// Successf returns a succeeded Result with a formatted message.
func Successf(format string, args ...any) Result {
	return Success(fmt.Sprintf(format, args...))
}

// Failuref returns a failed Result with a formatted message.
func Failuref(format string, args ...any) Result {
	return Failure(fmt.Sprintf(format, args...))
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool { return r.ok }

// Failed reports whether the operation failed.
func (r Result) Failed() bool { return !r.ok }

// String renders the outcome with its message, if any.
func (r Result) String() string {
	label := "failed"
	if r.ok {
		label = "ok"
	}
	if r.Message == "" {
		return label
	}
	return label + ": " + r.Message
}
