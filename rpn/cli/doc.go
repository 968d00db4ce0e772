package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rpn.cli'
func tracer() tracing.Trace {
	return tracing.Select("rpn.cli")
}
