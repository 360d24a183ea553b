package shape

import (
	"github.com/annieversary/harfbuzz-wasm-fonts/hb"
	"github.com/annieversary/harfbuzz-wasm-fonts/numeral"
)

// Substitute walks a glyph sequence once, replaces every run of consecutive
// ASCII digit glyphs with the glyphs of the equivalent Roman numeral, and
// resolves the result against font. Non-digit glyphs pass through with
// cluster and flags untouched. The input slice is not modified.
func Substitute(font hb.Font, in []hb.Glyph) []hb.Glyph {
	out := make([]hb.Glyph, 0, len(in))
	digits := make([]uint8, 0, 20)
	for _, g := range in {
		if d, ok := numeral.DigitValue(g.Codepoint); ok {
			digits = append(digits, d)
			continue
		}
		// leaving a digit run: render it before the current glyph
		out = flushDigits(digits, out)
		digits = digits[:0]
		out = append(out, g)
	}
	// a trailing number has no non-digit glyph behind it to trigger the flush
	out = flushDigits(digits, out)

	resolve(font, out)
	return out
}

// flushDigits appends the Roman-numeral glyphs for a digit run to out.
// An empty run appends nothing.
func flushDigits(digits []uint8, out []hb.Glyph) []hb.Glyph {
	if len(digits) == 0 {
		return out
	}
	number := numeral.NumberFromDigits(digits)
	roman := numeral.Encode(number)
	tracer().Debugf("digit run of length %d becomes numeral %q", len(digits), roman)
	return append(out, numeral.Glyphs(roman)...)
}
