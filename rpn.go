package rpn

import (
	"context"
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rpn'.
func tracer() tracing.Trace {
	return tracing.Select("rpn")
}

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context = context.Background()

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}
