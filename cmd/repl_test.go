package cmd

import "testing"

func TestNeedsMoreInput(t *testing.T) {
	cases := map[string]bool{
		"let x = 1;":            false,
		"function f() {":        true,
		"for i in [1, 2] {\n":   true,
		"let x = ;":             false,
		"print(1":               true,
		"while true { break; }": false,
	}

	for src, want := range cases {
		if got := needsMoreInput(src); got != want {
			t.Errorf("%q: expected %v, got %v", src, want, got)
		}
	}
}
