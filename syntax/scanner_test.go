package syntax

import (
	"cloudscribe/logging"
	"strings"
	"testing"
)

func scanAll(t *testing.T, src string) []*Token {
	t.Helper()

	sc := NewScanner(&logging.LogContext{Source: src})

	var toks []*Token
	for {
		tok, err := sc.ReadToken()
		if err != nil {
			t.Fatalf("unexpected scan error in %q: %s", src, err)
		}

		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

func TestScanKinds(t *testing.T) {
	cases := []struct {
		src   string
		kinds []int
	}{
		{"let x = 10; // comment\nx++;", []int{LET, IDENTIFIER, ASSIGN, INTLIT, SEMICOLON, IDENTIFIER, INCREM, SEMICOLON, EOF}},
		{"const pi = 3.14;", []int{CONST, IDENTIFIER, ASSIGN, FLOATLIT, SEMICOLON, EOF}},
		{"1.5e-3", []int{FLOATLIT, EOF}},
		{"xs[0].length", []int{IDENTIFIER, LBRACKET, INTLIT, RBRACKET, DOT, IDENTIFIER, EOF}},
		{"a ?? b ? c : d", []int{IDENTIFIER, COALESCE, IDENTIFIER, QUESTION, IDENTIFIER, COLON, IDENTIFIER, EOF}},
		{"x ** -y -> z -- w", []int{IDENTIFIER, POWER, MINUS, IDENTIFIER, ARROW, IDENTIFIER, DECREM, IDENTIFIER, EOF}},
		{"a <= b != c && !d || e & f | g ^ h", []int{
			IDENTIFIER, LTEQ, IDENTIFIER, NEQ, IDENTIFIER, AND, NOT, IDENTIFIER,
			OR, IDENTIFIER, AMP, IDENTIFIER, PIPE, IDENTIFIER, CARET, IDENTIFIER, EOF,
		}},
		{"true false some _let", []int{BOOLLIT, BOOLLIT, SOME, IDENTIFIER, EOF}},
		{"a / b % c", []int{IDENTIFIER, DIVIDE, IDENTIFIER, MOD, IDENTIFIER, EOF}},
	}

	for _, c := range cases {
		toks := scanAll(t, c.src)
		if len(toks) != len(c.kinds) {
			t.Errorf("%q: expected %d tokens, got %d", c.src, len(c.kinds), len(toks))
			continue
		}

		for i, tok := range toks {
			if tok.Kind != c.kinds[i] {
				t.Errorf("%q: token %d (%q) has kind %d, expected %d", c.src, i, tok.Value, tok.Kind, c.kinds[i])
			}
		}
	}
}

func TestScanStringKeepsQuotes(t *testing.T) {
	toks := scanAll(t, `let s = "a\"b\n";`)

	if toks[3].Kind != STRINGLIT || toks[3].Value != `"a\"b\n"` {
		t.Errorf("unexpected string token: %+v", toks[3])
	}
}

func TestScanPositions(t *testing.T) {
	toks := scanAll(t, "let x = 1;\n  x++;")

	pos := toks[1].Position()
	if pos.StartLn != 1 || pos.StartCol != 4 || pos.EndCol != 5 {
		t.Errorf("wrong position for `x`: %+v", pos)
	}

	pos = toks[5].Position()
	if pos.StartLn != 2 || pos.StartCol != 2 {
		t.Errorf("wrong position for second `x`: %+v", pos)
	}

	if pos.String() != "2:3" {
		t.Errorf("expected 2:3, got %s", pos)
	}
}

func TestScanErrors(t *testing.T) {
	cases := map[string]string{
		"let #x = 1;":       "unexpected character `#`",
		`let x = "hello;`:   "expected closing `\"`",
		"let x = 2abc;":     "malformed number `2a`",
		`let x = "a\q";`:    "unknown escape sequence",
		"let x = 1.5e+;":    "expected an exponent",
		"let y = \"a\nb\";": "expected closing `\"`",
	}

	for src, want := range cases {
		sc := NewScanner(&logging.LogContext{Source: src})

		var err error
		for {
			var tok *Token
			tok, err = sc.ReadToken()
			if err != nil || tok.Kind == EOF {
				break
			}
		}

		if err == nil {
			t.Errorf("%q: expected a scan error", src)
		} else if !strings.Contains(err.Error(), want) {
			t.Errorf("%q: expected error containing %q, got %q", src, want, err)
		}
	}
}
