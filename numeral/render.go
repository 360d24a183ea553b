package numeral

import "github.com/annieversary/harfbuzz-wasm-fonts/hb"

// Glyphs renders an encoded numeral string as glyph records.
//
// Each glyph carries the index of its character within the numeral string as
// its cluster. A '_' escape becomes an [Overline] glyph which borrows the
// cluster of the letter following it, so that cursor placement lands on the
// letter rather than on the mark. Flags are zero and advances and offsets
// are left for glyph resolution.
func Glyphs(numeral string) []hb.Glyph {
	glyphs := make([]hb.Glyph, 0, len(numeral))
	for i := 0; i < len(numeral); i++ { // numeral strings are pure ASCII
		g := hb.Glyph{
			Codepoint: uint32(numeral[i]),
			Cluster:   uint32(i),
		}
		if numeral[i] == '_' {
			g.Codepoint = Overline
			g.Cluster = uint32(i + 1)
		}
		glyphs = append(glyphs, g)
	}
	return glyphs
}
