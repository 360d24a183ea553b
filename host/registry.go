package host

import (
	"errors"
	"sync"

	"github.com/annieversary/harfbuzz-wasm-fonts/hb"
)

var (
	// ErrUnknownFontRef indicates a font ref that resolves to no registered font.
	ErrUnknownFontRef = errors.New("host: unknown font ref")
	// ErrUnknownBufferRef indicates a buffer ref that resolves to no registered buffer.
	ErrUnknownBufferRef = errors.New("host: unknown buffer ref")
)

// registry hands out numeric refs for host capabilities. Refs start at 1;
// ref 0 is never valid and may be used as a null handle by hosts.
type registry struct {
	mu      sync.Mutex
	fonts   map[uint32]hb.Font
	buffers map[uint32]hb.Buffer
	nextRef uint32
}

var reg = &registry{
	fonts:   make(map[uint32]hb.Font),
	buffers: make(map[uint32]hb.Buffer),
	nextRef: 1,
}

// RegisterFont registers a font capability and returns its ref.
func RegisterFont(font hb.Font) uint32 {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	ref := reg.nextRef
	reg.nextRef++
	reg.fonts[ref] = font
	return ref
}

// RegisterBuffer registers a buffer capability and returns its ref.
func RegisterBuffer(buf hb.Buffer) uint32 {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	ref := reg.nextRef
	reg.nextRef++
	reg.buffers[ref] = buf
	return ref
}

// ReleaseFont drops a font registration. Unknown refs are ignored.
func ReleaseFont(ref uint32) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.fonts, ref)
}

// ReleaseBuffer drops a buffer registration. Unknown refs are ignored.
func ReleaseBuffer(ref uint32) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.buffers, ref)
}

// FontFromRef exchanges a numeric ref for the registered font capability.
// The ref is validated here, once, at the boundary.
func FontFromRef(ref uint32) (hb.Font, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	font, ok := reg.fonts[ref]
	if !ok {
		return nil, ErrUnknownFontRef
	}
	return font, nil
}

// BufferFromRef exchanges a numeric ref for the registered buffer capability.
func BufferFromRef(ref uint32) (hb.Buffer, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	buf, ok := reg.buffers[ref]
	if !ok {
		return nil, ErrUnknownBufferRef
	}
	return buf, nil
}
