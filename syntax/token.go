package syntax

import "cloudscribe/logging"

// Token represents a token read in by the scanner
type Token struct {
	Kind  int
	Value string

	// Line is line number starting at 1
	Line int

	// Col is the column just past the last character of the token; columns
	// start at 0
	Col int
}

// Position returns the span of text the token covers
func (t *Token) Position() *logging.TextPosition {
	return TextPositionOfToken(t)
}

// The various kinds of a tokens supported by the scanner
const (
	// declarations
	LET = iota
	CONST
	FUNCTION
	TASK

	// control flow
	IF
	ELSE
	WHILE
	FOR
	IN
	BREAK
	RETURN

	// expression keywords
	SOME

	// arithmetic operators
	PLUS
	MINUS
	STAR
	DIVIDE
	MOD
	POWER
	INCREM
	DECREM

	// comparison and logical operators
	LT
	GT
	LTEQ
	GTEQ
	EQ
	NEQ
	NOT
	AND
	OR

	// bitwise operators
	AMP
	PIPE
	CARET

	// optional operators
	COALESCE // ??
	QUESTION // ?

	ASSIGN
	DOT
	ARROW

	// punctuation
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	COMMA
	SEMICOLON
	COLON

	// literals (and identifiers)
	IDENTIFIER
	STRINGLIT
	INTLIT
	FLOATLIT
	BOOLLIT

	// used in parsing algorithm
	EOF
)

// token patterns (matching strings) for keywords
var keywordPatterns = map[string]int{
	"let":      LET,
	"const":    CONST,
	"function": FUNCTION,
	"task":     TASK,
	"if":       IF,
	"else":     ELSE,
	"while":    WHILE,
	"for":      FOR,
	"in":       IN,
	"break":    BREAK,
	"return":   RETURN,
	"some":     SOME,
	"true":     BOOLLIT,
	"false":    BOOLLIT,
}

// token patterns for symbolic items - longest match wins.  Every compound
// pattern begins with a valid shorter pattern.
var symbolPatterns = map[string]int{
	"+":  PLUS,
	"++": INCREM,
	"-":  MINUS,
	"--": DECREM,
	"->": ARROW,
	"*":  STAR,
	"**": POWER,
	"/":  DIVIDE,
	"%":  MOD,
	"<":  LT,
	">":  GT,
	"<=": LTEQ,
	">=": GTEQ,
	"==": EQ,
	"!=": NEQ,
	"!":  NOT,
	"&&": AND,
	"||": OR,
	"&":  AMP,
	"|":  PIPE,
	"^":  CARET,
	"?":  QUESTION,
	"??": COALESCE,
	"=":  ASSIGN,
	".":  DOT,
	"(":  LPAREN,
	")":  RPAREN,
	"{":  LBRACE,
	"}":  RBRACE,
	"[":  LBRACKET,
	"]":  RBRACKET,
	",":  COMMA,
	";":  SEMICOLON,
	":":  COLON,
}

// kindNames is used to describe expected tokens in syntax errors
var kindNames = map[int]string{
	IDENTIFIER: "an identifier",
	STRINGLIT:  "a string",
	INTLIT:     "a number",
	FLOATLIT:   "a number",
	BOOLLIT:    "a boolean",
	EOF:        "end of file",
}

func init() {
	for pattern, kind := range keywordPatterns {
		if kind != BOOLLIT {
			kindNames[kind] = "`" + pattern + "`"
		}
	}

	for pattern, kind := range symbolPatterns {
		kindNames[kind] = "`" + pattern + "`"
	}
}
