package wasmfonts

import (
	"github.com/annieversary/harfbuzz-wasm-fonts/hb"
	"github.com/annieversary/harfbuzz-wasm-fonts/shape"
)

// TextGlyphs builds an unshaped glyph sequence for a string: one glyph per
// rune, codepoint set to the rune's scalar value and clusters numbered by
// rune position.
func TextGlyphs(text string) []hb.Glyph {
	runes := []rune(text)
	glyphs := make([]hb.Glyph, 0, len(runes))
	for i, r := range runes {
		glyphs = append(glyphs, hb.Glyph{Codepoint: uint32(r), Cluster: uint32(i)})
	}
	return glyphs
}

// ShapeText runs the Roman-numeral substitution over a string. It is a
// convenience wrapper for hosts that do not bring their own glyph buffers:
// the input sequence comes from [TextGlyphs] and the result is fully
// resolved against font.
func ShapeText(font hb.Font, text string) []hb.Glyph {
	return shape.Substitute(font, TextGlyphs(text))
}
