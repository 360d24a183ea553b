/*
Package sfntfont adapts SFNT fonts (TTF/OTF) to the hb.Font query interface.

Lookups go through golang.org/x/image/font/sfnt. Advances are queried at a
ppem equal to the font's units-per-em and without hinting, so they come back
in font units.
*/
package sfntfont

import "github.com/npillmayer/schuko/tracing"

// tracer returns a trace sink for the font-adapter namespace.
func tracer() tracing.Trace {
	return tracing.Select("wasmfonts.shape")
}
