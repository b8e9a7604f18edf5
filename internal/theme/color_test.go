package theme

import "testing"

// TestParseHexRoundTrip verifies that parsing a hex string and rendering it
// back yields the exact original value, since stored overrides must not drift.
func TestParseHexRoundTrip(t *testing.T) {
	cases := []string{"#F7F6F2", "#5AA469", "#333333", "#666666", "#000000", "#FFFFFF"}
	for _, hex := range cases {
		c, err := ParseHex(hex)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", hex, err)
		}
		if got := c.Hex(); got != hex {
			t.Errorf("ParseHex(%q).Hex() = %q", hex, got)
		}
	}
}

// TestParseHexLenient verifies that a missing '#', lowercase digits, and
// surrounding whitespace are accepted, since values arrive from YAML and URLs.
func TestParseHexLenient(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"f7f6f2", "#F7F6F2"},
		{"#5aa469", "#5AA469"},
		{"  #333333 ", "#333333"},
	}
	for _, tc := range cases {
		c, err := ParseHex(tc.input)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", tc.input, err)
		}
		if got := c.Hex(); got != tc.want {
			t.Errorf("ParseHex(%q).Hex() = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// TestParseHexRejectsMalformed verifies that short, long, and non-hex inputs
// are rejected instead of being stored as garbage overrides.
func TestParseHexRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "#FFF", "#FFFFFFF", "#GGGGGG", "not a color"} {
		if _, err := ParseHex(input); err == nil {
			t.Errorf("ParseHex(%q): expected error", input)
		}
	}
}

// TestColorJSON verifies the hex JSON encoding both ways.
func TestColorJSON(t *testing.T) {
	c := RGB(0x5A, 0xA4, 0x69)
	data, err := c.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"#5AA469"` {
		t.Errorf("marshal = %s, want \"#5AA469\"", data)
	}

	var back Color
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != c {
		t.Errorf("round trip = %v, want %v", back, c)
	}
}
