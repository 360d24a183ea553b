package shape

import (
	"github.com/annieversary/harfbuzz-wasm-fonts/hb"
	"github.com/annieversary/harfbuzz-wasm-fonts/numeral"
)

// overlineRaise lifts overline marks above the numeral letter, in font units.
const overlineRaise = 130

// resolve maps every codepoint to a font glyph index and assigns horizontal
// advances, in place. Overline marks get zero advance, so the following
// letter renders at the same x position underneath the mark, and a raised
// vertical offset. Clusters, flags and vertical advances stay untouched.
func resolve(font hb.Font, glyphs []hb.Glyph) {
	for i := range glyphs {
		g := &glyphs[i]
		isOverline := g.Codepoint == numeral.Overline // before the codepoint is overwritten

		g.Codepoint = font.Glyph(g.Codepoint, 0)

		if isOverline {
			g.XAdvance = 0
			g.YOffset = overlineRaise
		} else {
			g.XAdvance = font.GlyphHAdvance(g.Codepoint)
			g.YOffset = 0
		}
	}
}
