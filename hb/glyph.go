package hb

// Glyph is one shaped unit in a glyph buffer.
//
// During scanning and substitution Codepoint holds a Unicode scalar value;
// after glyph resolution it holds a font-specific glyph index. Cluster
// identifies the logical input character(s) the glyph corresponds to and is
// what text selection and cursor mapping operate on. Flags is an opaque
// pass-through bitfield.
type Glyph struct {
	Codepoint uint32
	Cluster   uint32
	XAdvance  int32
	YAdvance  int32
	XOffset   int32
	YOffset   int32
	Flags     uint32
}

// Font is the query surface the shaping transform needs from a host font.
//
// Implementations must behave as pure lookups: no side effects, and identical
// answers for identical arguments within one shaping call.
type Font interface {
	// Glyph maps a codepoint (with an optional variation selector) to a
	// glyph index. Unmapped codepoints yield the font's notdef index.
	Glyph(codepoint, varSelector uint32) uint32
	// GlyphHAdvance returns the horizontal advance of a glyph in font units.
	GlyphHAdvance(gid uint32) int32
}

// Buffer is a mutable glyph sequence owned by the shaping host.
//
// Glyphs exposes the current sequence; SetGlyphs replaces it wholesale.
// Implementations should not retain references to slices passed to SetGlyphs
// unless that is a deliberate part of their design.
type Buffer interface {
	Glyphs() []Glyph
	SetGlyphs(glyphs []Glyph)
}

// BufferSlice is the default Buffer implementation backed by a slice.
type BufferSlice struct {
	glyphs []Glyph
}

// NewBuffer creates a buffer holding the given glyphs.
func NewBuffer(glyphs []Glyph) *BufferSlice {
	return &BufferSlice{glyphs: glyphs}
}

func (b *BufferSlice) Glyphs() []Glyph {
	if b == nil {
		return nil
	}
	return b.glyphs
}

func (b *BufferSlice) SetGlyphs(glyphs []Glyph) {
	if b == nil {
		return
	}
	b.glyphs = glyphs
}
