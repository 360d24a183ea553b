/*
Package wasmfonts replaces decimal numbers in shaped text with Roman
numerals.

The transform operates on glyph buffers: runs of consecutive ASCII digit
glyphs are detected, read as base-10 integers, encoded as Roman numerals
(with combining-overline vinculum notation for values of 4000 and above) and
substituted back into the buffer, resolved against the active font with
correct advances and a raised offset for the overline marks.

Hosts embedding the transform through the plugin calling convention use
package host; programs shaping plain strings can call [ShapeText] directly
with any hb.Font implementation, for example package sfntfont.
*/
package wasmfonts
