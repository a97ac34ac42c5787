package hawk

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// Frame describes one entry of an event backtrace.
type Frame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

// User identifies the user affected by an event. It is passed through to
// the collector unchanged.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	URL   string `json:"url,omitempty"`
	Image string `json:"image,omitempty"`
}

// Event is the normalized representation of one error occurrence.
type Event struct {
	Title          string                 `json:"title"`
	Type           string                 `json:"type,omitempty"`
	Backtrace      []Frame                `json:"backtrace"`
	User           *User                  `json:"user,omitempty"`
	Context        map[string]interface{} `json:"context,omitempty"`
	CatcherVersion string                 `json:"catcherVersion"`
}

// Envelope is the wire unit posted to the collector.
type Envelope struct {
	Token       string `json:"token"`
	CatcherType string `json:"catcherType"`
	Payload     Event  `json:"payload"`
}

// compose builds the canonical event for an error. It never fails: an
// error without a stack trace simply yields an empty backtrace.
func compose(err error) Event {
	return Event{
		Title:          err.Error(),
		Type:           fmt.Sprintf("%T", err),
		Backtrace:      extractBacktrace(err),
		CatcherVersion: Version,
	}
}

// mergeContext overlays call-time context on top of the default context.
// Neither input is mutated; call-time keys win on collision.
func mergeContext(def, call map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(def)+len(call))
	for k, v := range def {
		merged[k] = v
	}
	for k, v := range call {
		merged[k] = v
	}
	return merged
}

// stackTracer is the stack carrier of github.com/pkg/errors values.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// extractBacktrace derives frames from the stack trace recorded in the
// error or its cause chain. Errors created without pkg/errors carry no
// stack, which yields an empty backtrace rather than a failure.
func extractBacktrace(err error) []Frame {
	var st stackTracer
	for e := err; e != nil; e = errors.Unwrap(e) {
		if t, ok := e.(stackTracer); ok {
			st = t
		}
	}
	if st == nil {
		return []Frame{}
	}

	trace := st.StackTrace()
	frames := make([]Frame, 0, len(trace))
	for _, f := range trace {
		// An errors.Frame holds the program counter + 1.
		pc := uintptr(f) - 1
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		file, line := fn.FileLine(pc)
		frames = append(frames, Frame{
			File:     file,
			Line:     line,
			Function: fn.Name(),
		})
	}
	return frames
}
