package numeral

// DigitValue classifies a codepoint as an ASCII decimal digit.
// The second return value is false for every non-digit codepoint.
func DigitValue(codepoint uint32) (uint8, bool) {
	if codepoint < 0x30 || codepoint > 0x39 {
		return 0, false
	}
	return uint8(codepoint - 0x30), true
}

// NumberFromDigits folds a digit sequence, most significant digit first,
// into the base-10 integer it denotes. The empty sequence yields 0.
func NumberFromDigits(digits []uint8) uint64 {
	var number, pow uint64 = 0, 1
	for i := len(digits) - 1; i >= 0; i-- {
		number += uint64(digits[i]) * pow
		pow *= 10
	}
	return number
}
