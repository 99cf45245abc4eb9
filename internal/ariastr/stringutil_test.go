package ariastr

import "testing"

func TestNormalizeWhiteSpace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  hello   world  ", "hello world"},
		{"a\tb\nc", "a b c"},
		{"", ""},
		{"single", "single"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeWhiteSpace(tt.input); got != tt.want {
			t.Errorf("NormalizeWhiteSpace(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEscapeRegExp(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a.b", `a\.b`},
		{"3.5 kg", `3\.5 kg`},
		{"[test]", `\[test\]`},
		{"plain", "plain"},
		{"a/b", `a\/b`},
	}
	for _, tt := range tests {
		if got := EscapeRegExp(tt.input); got != tt.want {
			t.Errorf("EscapeRegExp(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLongestCommonSubstring(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"hello world", "say hello there", "hello "},
		{"", "abc", ""},
		{"abc", "", ""},
		{"abcdef", "xyzabcxyz", "abc"},
		{"same", "same", "same"},
		{"abc", "xyz", ""},
	}
	for _, tt := range tests {
		if got := LongestCommonSubstring(tt.a, tt.b); got != tt.want {
			t.Errorf("LongestCommonSubstring(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}
