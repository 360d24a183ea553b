package numeral

import "strings"

// Overline is the combining overline codepoint (U+0305). A numeral letter
// carrying it denotes its value multiplied by 1000.
const Overline = 0x305

// romanTable lists numeral thresholds in strictly descending order.
// A '_' in a symbol escapes "overline on the following letter".
var romanTable = []struct {
	value  uint64
	symbol string
}{
	{1_000_000, "_M"},
	{900_000, "_C_M"},
	{500_000, "_D"},
	{400_000, "_C_D"},
	{100_000, "_C"},
	{90_000, "_X_C"},
	{50_000, "_L"},
	{40_000, "_X_L"},
	{10_000, "_X"},
	{9_000, "_I_X"},
	{5_000, "_V"},
	{4_000, "_I_V"},
	{1_000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// Encode renders a number as a Roman-numeral string, with overline notation
// for values of 4000 and above. Zero encodes to the empty string; Roman
// numerals have no symbol for it. Values beyond the top table tier repeat
// the top symbol as often as needed.
func Encode(number uint64) string {
	var sb strings.Builder
	for _, entry := range romanTable {
		for number >= entry.value {
			sb.WriteString(entry.symbol)
			number -= entry.value
		}
	}
	return sb.String()
}
