/*
Package hb carries the glyph-buffer data model shared by all shaping layers.

The types mirror the harfbuzz buffer contract: a [Glyph] is one shaped unit
with cluster and positioning metadata, a [Font] answers pure glyph queries,
and a [Buffer] is a mutable glyph sequence owned by the shaping host.
*/
package hb
