package numeral

import "testing"

func TestDigitValue(t *testing.T) {
	for cp := uint32(0x30); cp <= 0x39; cp++ {
		d, ok := DigitValue(cp)
		if !ok {
			t.Fatalf("codepoint %#x not classified as digit", cp)
		}
		if want := uint8(cp - 0x30); d != want {
			t.Fatalf("digit value of %#x = %d, want %d", cp, d, want)
		}
	}
	for _, cp := range []uint32{0x2f, 0x3a, 'a', 'I', 0x305, 0} {
		if _, ok := DigitValue(cp); ok {
			t.Fatalf("codepoint %#x misclassified as digit", cp)
		}
	}
}

func TestNumberFromDigits(t *testing.T) {
	cases := []struct {
		digits []uint8
		want   uint64
	}{
		{[]uint8{1}, 1},
		{[]uint8{2}, 2},
		{[]uint8{1, 1, 1}, 111},
		{[]uint8{1, 2, 3}, 123},
		{[]uint8{3, 2, 1}, 321},
		{[]uint8{3, 2, 1, 4, 5, 6}, 321456},
		{[]uint8{}, 0},
		{nil, 0},
	}
	for _, c := range cases {
		if got := NumberFromDigits(c.digits); got != c.want {
			t.Fatalf("number from digits %v = %d, want %d", c.digits, got, c.want)
		}
	}
}

func TestEncode(t *testing.T) {
	cases := []struct {
		number uint64
		want   string
	}{
		{0, ""},
		{1, "I"},
		{2, "II"},
		{9, "IX"},
		{11, "XI"},
		{121, "CXXI"},
		{2321, "MMCCCXXI"},
		{3999, "MMMCMXCIX"},
		{4000, "_I_V"},
		{12321, "_XMMCCCXXI"},
		{1_000_000, "_M"},
	}
	for _, c := range cases {
		if got := Encode(c.number); got != c.want {
			t.Fatalf("encode(%d) = %q, want %q", c.number, got, c.want)
		}
	}
}

// Values above the top table tier repeat the top symbol; long but correct.
func TestEncodeBeyondTopTier(t *testing.T) {
	if got := Encode(2_000_000); got != "_M_M" {
		t.Fatalf("encode(2000000) = %q, want %q", got, "_M_M")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	for _, n := range []uint64{0, 1, 49, 3999, 12321, 987654} {
		first := Encode(n)
		for i := 0; i < 3; i++ {
			if again := Encode(n); again != first {
				t.Fatalf("encode(%d) unstable: %q then %q", n, first, again)
			}
		}
	}
}
