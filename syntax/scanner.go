package syntax

import (
	"cloudscribe/logging"
	"io"
	"strings"
	"unicode/utf8"
)

// IsLetter tests if a rune is an ASCII character
func IsLetter(r rune) bool {
	return r > '`' && r < '{' || r > '@' && r < '[' // avoid using <= and >= by checking characters on boundaries (same for IsDigit)
}

// IsDigit tests if a rune is an ASCII digit
func IsDigit(r rune) bool {
	return r > '/' && r < ':'
}

// Scanner works like an io.Reader for a source (outputting tokens)
type Scanner struct {
	src *strings.Reader

	line int
	col  int

	tokBuilder strings.Builder

	curr rune
}

// NewScanner creates a scanner for the source held by the log context
func NewScanner(lctx *logging.LogContext) *Scanner {
	return &Scanner{src: strings.NewReader(lctx.Source), line: 1}
}

// ReadToken reads a single token from the stream.  At the end of the source it
// returns an EOF token; any malformed token is returned as a syntax error.
func (s *Scanner) ReadToken() (*Token, error) {
	for s.readNext() {
		var tok *Token
		var err error

		switch s.curr {
		//  ignore whitespace and other non-meaningful characters (eg. BOM)
		case ' ', '\t', '\n', '\r', '\f', '\v', 65279:
			s.tokBuilder.Reset()
			continue
		// handle strings
		case '"':
			tok, err = s.readStringLiteral()
		// handle comments and division
		case '/':
			if ahead, more := s.peek(); more && ahead == '/' {
				s.skipLineComment()
				s.tokBuilder.Reset()
				continue
			}

			tok = s.getToken(DIVIDE)
		default:
			if IsLetter(s.curr) || s.curr == '_' {
				tok = s.readWord()
			} else if IsDigit(s.curr) {
				tok, err = s.readNumberLiteral()
			} else if kind, ok := symbolPatterns[string(s.curr)]; ok {
				// all compound tokens begin with valid single tokens so the
				// check above will match the start of any symbolic token;
				// keep reading as long as our lookahead extends the match
				for ahead, more := s.peek(); more; ahead, more = s.peek() {
					if skind, ok := symbolPatterns[s.tokBuilder.String()+string(ahead)]; ok {
						kind = skind
						s.readNext()
					} else {
						break
					}
				}

				tok = s.getToken(kind)
			} else {
				err = s.malformed("unexpected character `%s`", s.tokBuilder.String())
			}
		}

		// discard the built contents for the current scanned token
		s.tokBuilder.Reset()
		return tok, err
	}

	return &Token{Kind: EOF, Line: s.line, Col: s.col}, nil
}

// create a token at the current position from the provided data
func (s *Scanner) makeToken(kind int, value string) *Token {
	return &Token{Kind: kind, Value: value, Line: s.line, Col: s.col}
}

// collect the contents of the token builder into a string and create a token at
// the current position with the provided kind and token string as its value
func (s *Scanner) getToken(kind int) *Token {
	return s.makeToken(kind, s.tokBuilder.String())
}

// malformed creates a syntax error spanning the contents of the token builder
func (s *Scanner) malformed(msg string, a ...interface{}) *SyntaxError {
	width := utf8.RuneCountInString(s.tokBuilder.String())
	return newSyntaxError(
		logging.LMKToken,
		&logging.TextPosition{StartLn: s.line, StartCol: s.col - width, EndLn: s.line, EndCol: s.col},
		msg,
		a...,
	)
}

// reads a rune from the source into the token builder and returns whether or
// not there are more runes to be read (true = no EOF, false = EOF)
func (s *Scanner) readNext() bool {
	if !s.skipNext() {
		return false
	}

	s.tokBuilder.WriteRune(s.curr)
	return true
}

// same behavior as readNext but doesn't populate the token builder; used for
// comments where it makes sense
func (s *Scanner) skipNext() bool {
	r, _, err := s.src.ReadRune()

	// reading from memory can only fail at the end of the source
	if err != nil {
		return false
	}

	// do line and column counting after the newline token
	// as been processed (so as to avoid positioning errors)
	if s.curr == '\n' {
		s.line++
		s.col = 0
	}

	s.curr = r
	s.col++
	return true
}

// peek a rune ahead on the scanner (used to test for malformed tokens)
func (s *Scanner) peek() (rune, bool) {
	r, _, err := s.src.ReadRune()

	if err != nil {
		return 0, false
	}

	s.src.UnreadRune()
	return r, true
}

// peekSecond peeks at the rune after the next one without consuming either
func (s *Scanner) peekSecond() (rune, bool) {
	offset, _ := s.src.Seek(0, io.SeekCurrent)
	defer s.src.Seek(offset, io.SeekStart)

	if _, _, err := s.src.ReadRune(); err != nil {
		return 0, false
	}

	r, _, err := s.src.ReadRune()
	if err != nil {
		return 0, false
	}

	return r, true
}

// skipLineComment skips everything up to (but not including) the next newline
func (s *Scanner) skipLineComment() {
	for ahead, more := s.peek(); more && ahead != '\n'; ahead, more = s.peek() {
		s.skipNext()
	}
}

// reads an identifier or a keyword from the input stream determines based on
// contents of stream (matches to all possible keywords)
func (s *Scanner) readWord() *Token {
	// if our word starts with an '_', it cannot be a keyword (simple check here)
	keywordValid := s.curr != '_'

	// the current character is already in the token builder; use a lookahead
	// to decide whether the word continues
	for {
		c, more := s.peek()

		if !more {
			break
		} else if IsDigit(c) || c == '_' {
			keywordValid = false
		} else if !IsLetter(c) {
			break
		}

		s.readNext()
	}

	tokValue := s.tokBuilder.String()

	if keywordValid {
		if kind, ok := keywordPatterns[tokValue]; ok {
			return s.makeToken(kind, tokValue)
		}
	}

	return s.makeToken(IDENTIFIER, tokValue)
}

// readDigits reads as many digits as possible and returns how many it read
func (s *Scanner) readDigits() int {
	n := 0
	for ahead, more := s.peek(); more && IsDigit(ahead); ahead, more = s.peek() {
		s.readNext()
		n++
	}

	return n
}

// read in a number literal: `digit+ ('.' digit+ ([eE] [+-]? digit+)?)?`
func (s *Scanner) readNumberLiteral() (*Token, error) {
	s.readDigits()
	kind := INTLIT

	// a `.` only continues the number when a digit follows it so that member
	// accesses such as `xs[0].length` still scan
	ahead, more := s.peek()
	second, _ := s.peekSecond()
	if more && ahead == '.' && IsDigit(second) {
		s.readNext()
		s.readDigits()
		kind = FLOATLIT

		if ahead, more := s.peek(); more && (ahead == 'e' || ahead == 'E') {
			s.readNext()

			if ahead, more := s.peek(); more && (ahead == '+' || ahead == '-') {
				s.readNext()
			}

			if s.readDigits() == 0 {
				return nil, s.malformed("expected an exponent in `%s`", s.tokBuilder.String())
			}
		}
	}

	// a number running straight into a word is a single malformed token
	if ahead, more := s.peek(); more && (IsLetter(ahead) || ahead == '_') {
		s.readNext()
		return nil, s.malformed("malformed number `%s`", s.tokBuilder.String())
	}

	return s.getToken(kind), nil
}

// read in a string literal; the leading `"` is already in the token builder
// and is kept (along with the closing quote) in the token value
func (s *Scanner) readStringLiteral() (*Token, error) {
	for {
		ahead, more := s.peek()

		switch {
		case !more, ahead == '\n':
			return nil, s.malformed("expected closing `\"` for string literal")
		case ahead == '\\':
			s.readNext()

			if err := s.readEscapeSequence(); err != nil {
				return nil, err
			}
		case ahead == '"':
			s.readNext()
			return s.getToken(STRINGLIT), nil
		default:
			s.readNext()
		}
	}
}

// readEscapeSequence reads the character after a `\` and checks that the two
// form a valid escape sequence
func (s *Scanner) readEscapeSequence() error {
	if !s.readNext() {
		return s.malformed("expected closing `\"` for string literal")
	}

	switch s.curr {
	case 'n', 't', 'r', '0', '\\', '"', '\'':
		return nil
	}

	return s.malformed("unknown escape sequence `\\%c`", s.curr)
}
