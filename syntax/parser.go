package syntax

import (
	"cloudscribe/logging"
	"fmt"
	"strings"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.  Each one builds
// a branch named after its production; productions that only select between
// alternatives (or only pass through a higher precedence level) return the
// node of the alternative they matched instead of wrapping it.

// Parser is a recursive descent parser for a CloudScribe source.  The parser
// acts as a state machine that moves over the source token by token and
// decides what to parse based on the token it is currently positioned over.
// All parsing functions assume that they begin with the parser centered on the
// first token of their production and must consume all tokens (including the
// last) of their production, leaving the parser on the next token.  Parsers
// are created once per source; parsing stops at the first error.
type Parser struct {
	// sc is the scanner supplying tokens
	sc *Scanner

	// tok is the current token the parser is positioned on
	tok *Token

	// err is the first error encountered
	err *SyntaxError
}

// NewParser creates a new parser reading tokens from the given scanner
func NewParser(sc *Scanner) *Parser {
	return &Parser{sc: sc}
}

// Parse parses the whole source into a `program` branch
func (p *Parser) Parse() (*ASTBranch, error) {
	if p.next() {
		if prog, ok := p.parseProgram(); ok {
			return prog, nil
		}
	}

	if p.err == nil {
		logging.LogFatal("parser failed without reporting an error")
	}

	return nil, p.err
}

// Parse is a convenience function which scans and parses the source of a log
// context in one go
func Parse(lctx *logging.LogContext) (*ASTBranch, error) {
	return NewParser(NewScanner(lctx)).Parse()
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token
func (p *Parser) next() bool {
	tok, err := p.sc.ReadToken()
	if err != nil {
		p.err = err.(*SyntaxError)
		return false
	}

	p.tok = tok
	return true
}

// got returns true if the parser is on a token of a given kind
func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// gotOneOf returns if the parser's current token kind is one of given kinds
func (p *Parser) gotOneOf(kinds ...int) bool {
	for _, kind := range kinds {
		if p.tok.Kind == kind {
			return true
		}
	}

	return false
}

// assert checks if the parser is on a token of a given kind and rejects the
// token if not
func (p *Parser) assert(kind int) bool {
	if p.got(kind) {
		return true
	}

	p.reject(kind)
	return false
}

// leaf turns the current token into an AST leaf
func (p *Parser) leaf() *ASTLeaf {
	return (*ASTLeaf)(p.tok)
}

// take returns the current token as a leaf and moves the parser forward
func (p *Parser) take() (*ASTLeaf, bool) {
	leaf := p.leaf()
	return leaf, p.next()
}

// expect asserts that the parser is on a token of the given kind, returns it
// as a leaf and moves the parser forward
func (p *Parser) expect(kind int) (*ASTLeaf, bool) {
	if p.assert(kind) {
		return p.take()
	}

	return nil, false
}

// -----------------------------------------------------------------------------

// reject reports an unexpected token error on the current token.  If any
// expected token kinds are given, they are listed in the message.
func (p *Parser) reject(expected ...int) {
	var found string
	if p.got(EOF) {
		found = "end of file"
	} else {
		found = fmt.Sprintf("`%s`", p.tok.Value)
	}

	if len(expected) == 0 {
		p.rejectWithMsg("unexpected %s", found)
		return
	}

	names := make([]string, len(expected))
	for i, kind := range expected {
		names[i] = kindNames[kind]
	}

	p.rejectWithMsg("expected %s but found %s", strings.Join(names, " or "), found)
}

// rejectWithMsg rejects the current token with a specific message
func (p *Parser) rejectWithMsg(msg string, a ...interface{}) {
	if p.err == nil {
		p.errorOn(p.tok.Position(), msg, a...)
		p.err.Incomplete = p.got(EOF)
	}
}

// errorOn records an error at a given position.  Only the first error is kept.
func (p *Parser) errorOn(pos *logging.TextPosition, msg string, a ...interface{}) {
	if p.err == nil {
		p.err = newSyntaxError(logging.LMKSyntax, pos, msg, a...)
	}
}
