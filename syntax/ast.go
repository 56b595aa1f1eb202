package syntax

import (
	"cloudscribe/logging"
	"unicode/utf8"
)

// ASTNode is a node of the concrete syntax tree produced by the parser
type ASTNode interface {
	// Position spans all the source text the node was built from
	Position() *logging.TextPosition
}

// ASTLeaf is a single token of the tree
type ASTLeaf Token

func (a *ASTLeaf) Position() *logging.TextPosition {
	return TextPositionOfToken((*Token)(a))
}

// TextPositionOfToken computes the position of a token.  The scanner records
// the column just past the token so the start is found by walking back over
// its runes.
func TextPositionOfToken(tok *Token) *logging.TextPosition {
	return &logging.TextPosition{
		StartLn:  tok.Line,
		StartCol: tok.Col - utf8.RuneCountInString(tok.Value),
		EndLn:    tok.Line,
		EndCol:   tok.Col,
	}
}

// ASTBranch is a node built from a grammar production.  `Name` is the name of
// the production and `Content` holds its leaves and sub-branches in source
// order, punctuation included.
type ASTBranch struct {
	Name    string
	Content []ASTNode
}

func (a *ASTBranch) Position() *logging.TextPosition {
	if len(a.Content) == 0 {
		logging.LogFatal("branch `" + a.Name + "` has no content")
		return nil
	}

	return logging.SpanOver(a.Content[0].Position(), a.Last().Position())
}

// BranchAt returns the item at `ndx` which must be a branch
func (a *ASTBranch) BranchAt(ndx int) *ASTBranch {
	return a.Content[ndx].(*ASTBranch)
}

// LeafAt returns the item at `ndx` which must be a leaf
func (a *ASTBranch) LeafAt(ndx int) *ASTLeaf {
	return a.Content[ndx].(*ASTLeaf)
}

func (a *ASTBranch) Len() int {
	return len(a.Content)
}

func (a *ASTBranch) Last() ASTNode {
	return a.Content[len(a.Content)-1]
}

func (a *ASTBranch) LastBranch() *ASTBranch {
	return a.Last().(*ASTBranch)
}

// Elements returns the items of a comma separated sequence held in
// `Content[start:end]` with the commas removed.  A negative `end` counts back
// from the end of the branch.
func (a *ASTBranch) Elements(start, end int) []ASTNode {
	if end < 0 {
		end += len(a.Content)
	}

	var elems []ASTNode
	for _, item := range a.Content[start:end] {
		if leaf, ok := item.(*ASTLeaf); ok && leaf.Kind == COMMA {
			continue
		}

		elems = append(elems, item)
	}

	return elems
}
