package logging

import (
	"fmt"
	"runtime/debug"
)

// Sink receives one log value, typically a string. It is supplied by the
// caller; anything it panics with propagates untouched.
type Sink func(v any)

// Wrapped funnels a fixed set of severity-named methods into one sink.
// The severities are names only, nothing is filtered or formatted. Exists
// so code written against a leveled logger can print through whatever
// output function the frontend provides.
type Wrapped struct {
	print Sink
	debug bool
}

func NewWrapped(print Sink, debug bool) *Wrapped {
	return &Wrapped{print: print, debug: debug}
}

func (w *Wrapped) Debug(v any)    { w.print(v) }
func (w *Wrapped) Warning(v any)  { w.print(v) }
func (w *Wrapped) Info(v any)     { w.print(v) }
func (w *Wrapped) Error(v any)    { w.print(v) }
func (w *Wrapped) Critical(v any) { w.print(v) }

// Exception forwards v and, in debug mode, a formatted stack trace as a
// second sink call. Values that are not errors get no trace: there is no
// failure in hand to report.
func (w *Wrapped) Exception(v any) {
	w.print(v)
	if !w.debug {
		return
	}
	if tb := formatTrace(v); tb != "" {
		w.print(tb)
	}
}

func formatTrace(v any) string {
	err, ok := v.(error)
	if !ok || err == nil {
		return ""
	}
	return fmt.Sprintf("%+v\n%s", err, debug.Stack())
}
