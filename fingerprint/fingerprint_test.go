package fingerprint

import "testing"

func TestSum_KnownValues(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Hello", "8b1a9953"},
		{"Hello!", "952d2c56"},
		{"", "d41d8cd9"},
	}
	for _, c := range cases {
		if got := Sum(c.text); got != c.want {
			t.Errorf("Sum(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestSum_Length(t *testing.T) {
	for _, text := range []string{"a", "some longer text with spaces", "ümläüts"} {
		if got := Sum(text); len(got) != Size {
			t.Errorf("Sum(%q) has length %d, want %d", text, len(got), Size)
		}
	}
}

func TestSum_Deterministic(t *testing.T) {
	if Sum("stable") != Sum("stable") {
		t.Error("same input must produce the same fingerprint")
	}
	if Sum("Hello") == Sum("Hello ") {
		t.Error("trailing whitespace must change the fingerprint")
	}
}
