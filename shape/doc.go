/*
Package shape substitutes Roman numerals for digit runs in a glyph buffer.

[Substitute] is a single forward pass over the input glyph sequence: runs of
consecutive ASCII digit glyphs are collected, converted through package
numeral, and replaced by the glyphs of the equivalent Roman numeral; all
other glyphs pass through untouched. A finishing pass then resolves every
output codepoint against the font and assigns advances and the raised
offset for overline marks.
*/
package shape

import "github.com/npillmayer/schuko/tracing"

// tracer returns a trace sink for the shaping pipeline namespace.
func tracer() tracing.Trace {
	return tracing.Select("wasmfonts.shape")
}
