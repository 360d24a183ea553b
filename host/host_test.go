package host

import (
	"errors"
	"testing"

	"github.com/annieversary/harfbuzz-wasm-fonts/hb"
)

// identityFont maps every codepoint to itself and reports unit advances.
type identityFont struct{}

func (identityFont) Glyph(codepoint, _ uint32) uint32 { return codepoint }

func (identityFont) GlyphHAdvance(gid uint32) int32 { return 1 }

func TestShapeSubstitutesRegisteredBuffer(t *testing.T) {
	fontRef := RegisterFont(identityFont{})
	defer ReleaseFont(fontRef)

	buf := hb.NewBuffer([]hb.Glyph{
		{Codepoint: 'x', Cluster: 0},
		{Codepoint: '9', Cluster: 1},
	})
	bufRef := RegisterBuffer(buf)
	defer ReleaseBuffer(bufRef)

	if rc := Shape(0, fontRef, bufRef, 0, 0); rc != 1 {
		t.Fatalf("shape returned %d, want 1", rc)
	}
	glyphs := buf.Glyphs()
	if len(glyphs) != 3 {
		t.Fatalf("buffer holds %d glyphs after shaping, want 3 (x + IX)", len(glyphs))
	}
	want := []uint32{'x', 'I', 'X'}
	for i, cp := range want {
		if glyphs[i].Codepoint != cp {
			t.Fatalf("glyph %d codepoint = %#x, want %#x", i, glyphs[i].Codepoint, cp)
		}
	}
}

func TestShapeRejectsUnknownRefs(t *testing.T) {
	buf := hb.NewBuffer([]hb.Glyph{{Codepoint: '1'}})
	bufRef := RegisterBuffer(buf)
	defer ReleaseBuffer(bufRef)

	if rc := Shape(0, 0xdeadbeef, bufRef, 0, 0); rc != 0 {
		t.Fatalf("shape with unknown font ref returned %d, want 0", rc)
	}
	if got := buf.Glyphs(); len(got) != 1 || got[0].Codepoint != '1' {
		t.Fatalf("buffer was touched by a rejected call: %+v", got)
	}

	fontRef := RegisterFont(identityFont{})
	defer ReleaseFont(fontRef)
	if rc := Shape(0, fontRef, 0xdeadbeef, 0, 0); rc != 0 {
		t.Fatalf("shape with unknown buffer ref returned %d, want 0", rc)
	}
}

func TestReleaseInvalidatesRef(t *testing.T) {
	fontRef := RegisterFont(identityFont{})
	if _, err := FontFromRef(fontRef); err != nil {
		t.Fatalf("fresh font ref rejected: %v", err)
	}
	ReleaseFont(fontRef)
	if _, err := FontFromRef(fontRef); !errors.Is(err, ErrUnknownFontRef) {
		t.Fatalf("released font ref error = %v, want %v", err, ErrUnknownFontRef)
	}

	bufRef := RegisterBuffer(hb.NewBuffer(nil))
	ReleaseBuffer(bufRef)
	if _, err := BufferFromRef(bufRef); !errors.Is(err, ErrUnknownBufferRef) {
		t.Fatalf("released buffer ref error = %v, want %v", err, ErrUnknownBufferRef)
	}
}

func TestRefsAreDistinct(t *testing.T) {
	a := RegisterFont(identityFont{})
	b := RegisterBuffer(hb.NewBuffer(nil))
	c := RegisterFont(identityFont{})
	defer ReleaseFont(a)
	defer ReleaseBuffer(b)
	defer ReleaseFont(c)
	if a == b || b == c || a == c {
		t.Fatalf("refs collide: %d %d %d", a, b, c)
	}
	if a == 0 || b == 0 || c == 0 {
		t.Fatal("ref 0 must never be handed out")
	}
}
