package syntax

// expr = unwrap_expr ['?' unwrap_expr ':' expr] ;
func (p *Parser) parseExpr() (ASTNode, bool) {
	test, ok := p.parseUnwrapExpr()
	if !ok || !p.got(QUESTION) {
		return test, ok
	}

	question, ok := p.take()
	if !ok {
		return nil, false
	}

	cons, ok := p.parseUnwrapExpr()
	if !ok {
		return nil, false
	}

	colon, ok := p.expect(COLON)
	if !ok {
		return nil, false
	}

	alt, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	return &ASTBranch{Name: "cond_expr", Content: []ASTNode{test, question, cons, colon, alt}}, true
}

// unwrap_expr = or_expr ['??' unwrap_expr] ;
func (p *Parser) parseUnwrapExpr() (ASTNode, bool) {
	lhs, ok := p.parseOrExpr()
	if !ok || !p.got(COALESCE) {
		return lhs, ok
	}

	op, ok := p.take()
	if !ok {
		return nil, false
	}

	rhs, ok := p.parseUnwrapExpr()
	if !ok {
		return nil, false
	}

	return &ASTBranch{Name: "unwrap_expr", Content: []ASTNode{lhs, op, rhs}}, true
}

// parseBinaryLevel parses one left-associative level of binary operators:
// `operand {op operand}`.  Each application of an operator becomes a branch
// named `name` holding the left operand, the operator and the right operand.
func (p *Parser) parseBinaryLevel(name string, operand func() (ASTNode, bool), ops ...int) (ASTNode, bool) {
	lhs, ok := operand()
	if !ok {
		return nil, false
	}

	for p.gotOneOf(ops...) {
		op, ok := p.take()
		if !ok {
			return nil, false
		}

		rhs, ok := operand()
		if !ok {
			return nil, false
		}

		lhs = &ASTBranch{Name: name, Content: []ASTNode{lhs, op, rhs}}
	}

	return lhs, true
}

// or_expr = and_expr {'||' and_expr} ;
func (p *Parser) parseOrExpr() (ASTNode, bool) {
	return p.parseBinaryLevel("or_expr", p.parseAndExpr, OR)
}

// and_expr = bor_expr {'&&' bor_expr} ;
func (p *Parser) parseAndExpr() (ASTNode, bool) {
	return p.parseBinaryLevel("and_expr", p.parseBorExpr, AND)
}

// bor_expr = bxor_expr {'|' bxor_expr} ;
func (p *Parser) parseBorExpr() (ASTNode, bool) {
	return p.parseBinaryLevel("bor_expr", p.parseBxorExpr, PIPE)
}

// bxor_expr = band_expr {'^' band_expr} ;
func (p *Parser) parseBxorExpr() (ASTNode, bool) {
	return p.parseBinaryLevel("bxor_expr", p.parseBandExpr, CARET)
}

// band_expr = comp_expr {'&' comp_expr} ;
func (p *Parser) parseBandExpr() (ASTNode, bool) {
	return p.parseBinaryLevel("band_expr", p.parseCompExpr, AMP)
}

// comp_expr = add_expr [comp_op add_expr] ;
// comp_op = '<' | '<=' | '>' | '>=' | '==' | '!=' ;
func (p *Parser) parseCompExpr() (ASTNode, bool) {
	lhs, ok := p.parseAddExpr()
	if !ok || !p.gotOneOf(LT, LTEQ, GT, GTEQ, EQ, NEQ) {
		return lhs, ok
	}

	op, ok := p.take()
	if !ok {
		return nil, false
	}

	rhs, ok := p.parseAddExpr()
	if !ok {
		return nil, false
	}

	return &ASTBranch{Name: "comp_expr", Content: []ASTNode{lhs, op, rhs}}, true
}

// add_expr = mul_expr {('+' | '-') mul_expr} ;
func (p *Parser) parseAddExpr() (ASTNode, bool) {
	return p.parseBinaryLevel("add_expr", p.parseMulExpr, PLUS, MINUS)
}

// mul_expr = pow_expr {('*' | '/' | '%') pow_expr} ;
func (p *Parser) parseMulExpr() (ASTNode, bool) {
	return p.parseBinaryLevel("mul_expr", p.parsePowExpr, STAR, DIVIDE, MOD)
}

// pow_expr = unary_expr ['**' pow_expr] ;
func (p *Parser) parsePowExpr() (ASTNode, bool) {
	base, ok := p.parseUnaryExpr()
	if !ok || !p.got(POWER) {
		return base, ok
	}

	op, ok := p.take()
	if !ok {
		return nil, false
	}

	exp, ok := p.parsePowExpr()
	if !ok {
		return nil, false
	}

	return &ASTBranch{Name: "pow_expr", Content: []ASTNode{base, op, exp}}, true
}

// unary_expr = ('!' | '-' | 'some') unary_expr | postfix_expr ;
func (p *Parser) parseUnaryExpr() (ASTNode, bool) {
	if !p.gotOneOf(NOT, MINUS, SOME) {
		return p.parsePostfixExpr()
	}

	op, ok := p.take()
	if !ok {
		return nil, false
	}

	operand, ok := p.parseUnaryExpr()
	if !ok {
		return nil, false
	}

	return &ASTBranch{Name: "unary_expr", Content: []ASTNode{op, operand}}, true
}

// postfix_expr = atom {call_suffix | subscript_suffix | member_suffix} ;
// call_suffix = '(' [expr {',' expr}] ')' ;
// subscript_suffix = '[' expr ']' ;
// member_suffix = '.' IDENTIFIER ;
func (p *Parser) parsePostfixExpr() (ASTNode, bool) {
	root, ok := p.parseAtom()
	if !ok {
		return nil, false
	}

	for {
		switch p.tok.Kind {
		case LPAREN:
			call, ok := p.parseSequence("call_expr", root, LPAREN, RPAREN)
			if !ok {
				return nil, false
			}

			root = call
		case LBRACKET:
			lbracket, ok := p.take()
			if !ok {
				return nil, false
			}

			index, ok := p.parseExpr()
			if !ok {
				return nil, false
			}

			rbracket, ok := p.expect(RBRACKET)
			if !ok {
				return nil, false
			}

			root = &ASTBranch{Name: "subscript_expr", Content: []ASTNode{root, lbracket, index, rbracket}}
		case DOT:
			dot, ok := p.take()
			if !ok {
				return nil, false
			}

			field, ok := p.expect(IDENTIFIER)
			if !ok {
				return nil, false
			}

			root = &ASTBranch{Name: "member_expr", Content: []ASTNode{root, dot, field}}
		default:
			return root, true
		}
	}
}

// atom = IDENTIFIER | INTLIT | FLOATLIT | STRINGLIT | BOOLLIT | array_lit
//      | '(' expr ')' ;
// array_lit = '[' [expr {',' expr}] ']' ;
func (p *Parser) parseAtom() (ASTNode, bool) {
	switch p.tok.Kind {
	case IDENTIFIER, INTLIT, FLOATLIT, STRINGLIT, BOOLLIT:
		return p.take()
	case LBRACKET:
		return p.parseSequence("array_lit", nil, LBRACKET, RBRACKET)
	case LPAREN:
		lparen, ok := p.take()
		if !ok {
			return nil, false
		}

		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}

		rparen, ok := p.expect(RPAREN)
		if !ok {
			return nil, false
		}

		return &ASTBranch{Name: "paren_expr", Content: []ASTNode{lparen, inner, rparen}}, true
	}

	p.rejectWithMsg("expected an expression but found %s", p.describeTok())
	return nil, false
}

// parseSequence parses a delimited, comma-separated list of expressions into a
// branch.  If `head` is not nil, it is placed before the opening delimiter.
func (p *Parser) parseSequence(name string, head ASTNode, open, close int) (*ASTBranch, bool) {
	branch := &ASTBranch{Name: name}
	if head != nil {
		branch.Content = append(branch.Content, head)
	}

	opener, ok := p.expect(open)
	if !ok {
		return nil, false
	}

	branch.Content = append(branch.Content, opener)

	first := true
	for !p.got(close) {
		if !first {
			comma, ok := p.expect(COMMA)
			if !ok {
				return nil, false
			}

			branch.Content = append(branch.Content, comma)
		}

		elem, ok := p.parseExpr()
		if !ok {
			return nil, false
		}

		branch.Content = append(branch.Content, elem)
		first = false
	}

	closer, ok := p.take()
	if !ok {
		return nil, false
	}

	branch.Content = append(branch.Content, closer)
	return branch, true
}

// describeTok describes the current token for use in error messages
func (p *Parser) describeTok() string {
	if p.got(EOF) {
		return "end of file"
	}

	return "`" + p.tok.Value + "`"
}
