package host

import (
	"github.com/annieversary/harfbuzz-wasm-fonts/shape"
)

// Shape is the plugin entry point. Signature and return convention follow
// the harfbuzz-wasm plugin contract: opaque numeric refs for the shape plan,
// the font, the glyph buffer and the feature list, plus the feature count.
// The plan and feature arguments exist only for compatibility with that
// contract and are ignored.
//
// The buffer's glyph sequence is committed back on every exit path. Returns
// 1 on success; a ref that resolves to no registered capability is an
// out-of-contract call and returns 0 without touching the buffer.
func Shape(shapePlan, fontRef, bufRef, features, numFeatures uint32) int32 {
	_ = shapePlan
	_ = features
	_ = numFeatures

	font, err := FontFromRef(fontRef)
	if err != nil {
		tracer().Errorf("shape entry: %v", err)
		return 0
	}
	buf, err := BufferFromRef(bufRef)
	if err != nil {
		tracer().Errorf("shape entry: %v", err)
		return 0
	}

	glyphs := buf.Glyphs()
	shaped := glyphs
	defer func() { buf.SetGlyphs(shaped) }() // write-back on every exit path

	shaped = shape.Substitute(font, glyphs)
	return 1
}
