/*
Package host bridges the plugin calling convention of a shaping host.

Hosts register their font and buffer capabilities and receive opaque numeric
refs in exchange; [Shape] accepts those refs with the harfbuzz-wasm plugin
signature, validates them once at the boundary, runs the Roman-numeral
substitution, and commits the shaped glyphs back to the buffer on every exit
path.
*/
package host

import "github.com/npillmayer/schuko/tracing"

// tracer returns a trace sink for the host-boundary namespace.
func tracer() tracing.Trace {
	return tracing.Select("wasmfonts.shape")
}
