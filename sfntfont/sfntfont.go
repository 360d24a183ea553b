package sfntfont

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/annieversary/harfbuzz-wasm-fonts/hb"
)

// Font implements hb.Font on top of a parsed SFNT font.
//
// Not safe for concurrent use: shaping is single-threaded and the adapter
// reuses one sfnt work buffer across queries.
type Font struct {
	sfnt *sfnt.Font
	buf  sfnt.Buffer
	upem fixed.Int26_6
}

var _ hb.Font = (*Font)(nil)

// Parse decodes an SFNT font from memory.
func Parse(data []byte) (*Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Font{
		sfnt: f,
		upem: fixed.I(int(f.UnitsPerEm())),
	}, nil
}

// Load reads and decodes an SFNT font from a file.
func Load(fontfile string) (*Font, error) {
	data, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Glyph maps a codepoint to a glyph index through the font's cmap.
// Unmapped codepoints yield 0 (notdef). Variation selectors are not
// supported by the underlying sfnt reader and are ignored.
func (f *Font) Glyph(codepoint, _ uint32) uint32 {
	gid, err := f.sfnt.GlyphIndex(&f.buf, rune(codepoint))
	if err != nil {
		tracer().Errorf("cmap lookup for %#x: %v", codepoint, err)
		return 0
	}
	return uint32(gid)
}

// GlyphHAdvance returns the horizontal advance of a glyph in font units.
func (f *Font) GlyphHAdvance(gid uint32) int32 {
	adv, err := f.sfnt.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), f.upem, font.HintingNone)
	if err != nil {
		tracer().Errorf("advance lookup for glyph %d: %v", gid, err)
		return 0
	}
	// unhinted advance at ppem == upem is the value in font units, 26.6 fixed
	return int32(adv >> 6)
}

// UnitsPerEm reports the font's design grid resolution.
func (f *Font) UnitsPerEm() int {
	return int(f.upem >> 6)
}
