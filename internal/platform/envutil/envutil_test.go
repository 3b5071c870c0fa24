package envutil

import "testing"

func TestString(t *testing.T) {
	t.Setenv("ETHOS_TEST_STR", "  value  ")
	if got := String("ETHOS_TEST_STR", "def"); got != "value" {
		t.Errorf("expected trimmed value, got %q", got)
	}
	t.Setenv("ETHOS_TEST_STR", "")
	if got := String("ETHOS_TEST_STR", "def"); got != "def" {
		t.Errorf("expected default, got %q", got)
	}
}

func TestInt(t *testing.T) {
	t.Setenv("ETHOS_TEST_INT", "8080")
	if got := Int("ETHOS_TEST_INT", 1); got != 8080 {
		t.Errorf("expected 8080, got %d", got)
	}
	t.Setenv("ETHOS_TEST_INT", "not a number")
	if got := Int("ETHOS_TEST_INT", 42); got != 42 {
		t.Errorf("expected default on parse failure, got %d", got)
	}
}

func TestBool(t *testing.T) {
	cases := []struct {
		raw  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"", false, false},
		{"1", false, true},
		{"true", false, true},
		{"YES", false, true},
		{"on", false, true},
		{"0", true, false},
		{"false", true, false},
		{"off", true, false},
		{"garbage", true, true},
	}
	for _, tc := range cases {
		t.Setenv("ETHOS_TEST_BOOL", tc.raw)
		if got := Bool("ETHOS_TEST_BOOL", tc.def); got != tc.want {
			t.Errorf("Bool(%q, %v) = %v, want %v", tc.raw, tc.def, got, tc.want)
		}
	}
}
