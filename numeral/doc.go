/*
Package numeral converts decimal digit runs into Roman-numeral glyph
sequences.

Conversion proceeds in three steps: a digit sequence is folded into its
integer value ([NumberFromDigits]), the value is encoded as a Roman-numeral
string ([Encode]), and the string is rendered as glyph records ([Glyphs]).
Values of 4000 and above use vinculum notation: a combining overline on a
numeral letter multiplies it by 1000.
*/
package numeral
