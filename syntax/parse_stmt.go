package syntax

// program = stmt {stmt} ;
func (p *Parser) parseProgram() (*ASTBranch, bool) {
	prog := &ASTBranch{Name: "program"}

	for !p.got(EOF) {
		stmt, ok := p.parseStmt()
		if !ok {
			return nil, false
		}

		prog.Content = append(prog.Content, stmt)
	}

	if len(prog.Content) == 0 {
		p.rejectWithMsg("expected a statement but found end of file")
		return nil, false
	}

	return prog, true
}

// stmt = var_decl | func_decl | task_decl | if_stmt | while_loop | for_loop
//      | break_stmt | return_stmt | simple_stmt ;
func (p *Parser) parseStmt() (*ASTBranch, bool) {
	switch p.tok.Kind {
	case LET, CONST:
		return p.parseVarDecl()
	case FUNCTION:
		return p.parseFuncDecl()
	case TASK:
		return p.parseTaskDecl()
	case IF:
		return p.parseIfStmt()
	case WHILE:
		return p.parseWhileLoop()
	case FOR:
		return p.parseForLoop()
	case BREAK:
		return p.parseBreakStmt()
	case RETURN:
		return p.parseReturnStmt()
	default:
		return p.parseSimpleStmt()
	}
}

// block = '{' {stmt} '}' ;
func (p *Parser) parseBlock() (*ASTBranch, bool) {
	lbrace, ok := p.expect(LBRACE)
	if !ok {
		return nil, false
	}

	block := &ASTBranch{Name: "block", Content: []ASTNode{lbrace}}
	for !p.got(RBRACE) {
		if p.got(EOF) {
			p.reject(RBRACE)
			return nil, false
		}

		stmt, ok := p.parseStmt()
		if !ok {
			return nil, false
		}

		block.Content = append(block.Content, stmt)
	}

	rbrace, ok := p.take()
	if !ok {
		return nil, false
	}

	block.Content = append(block.Content, rbrace)
	return block, true
}

// var_decl = ('let' | 'const') IDENTIFIER '=' expr ';' ;
func (p *Parser) parseVarDecl() (*ASTBranch, bool) {
	kw, ok := p.take()
	if !ok {
		return nil, false
	}

	name, ok := p.expect(IDENTIFIER)
	if !ok {
		return nil, false
	}

	eq, ok := p.expect(ASSIGN)
	if !ok {
		return nil, false
	}

	initializer, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	semi, ok := p.expect(SEMICOLON)
	if !ok {
		return nil, false
	}

	return &ASTBranch{Name: "var_decl", Content: []ASTNode{kw, name, eq, initializer, semi}}, true
}

// func_decl = 'function' IDENTIFIER params [':' type_label] block ;
func (p *Parser) parseFuncDecl() (*ASTBranch, bool) {
	kw, ok := p.take()
	if !ok {
		return nil, false
	}

	name, ok := p.expect(IDENTIFIER)
	if !ok {
		return nil, false
	}

	params, ok := p.parseParams()
	if !ok {
		return nil, false
	}

	decl := &ASTBranch{Name: "func_decl", Content: []ASTNode{kw, name, params}}

	if p.got(COLON) {
		colon, ok := p.take()
		if !ok {
			return nil, false
		}

		rtType, ok := p.parseTypeLabel()
		if !ok {
			return nil, false
		}

		decl.Content = append(decl.Content, colon, rtType)
	}

	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}

	decl.Content = append(decl.Content, body)
	return decl, true
}

// params = '(' [param {',' param}] ')' ;
// param = IDENTIFIER ':' type_label ;
func (p *Parser) parseParams() (*ASTBranch, bool) {
	lparen, ok := p.expect(LPAREN)
	if !ok {
		return nil, false
	}

	params := &ASTBranch{Name: "params", Content: []ASTNode{lparen}}

	for !p.got(RPAREN) {
		if len(params.Content) > 1 {
			comma, ok := p.expect(COMMA)
			if !ok {
				return nil, false
			}

			params.Content = append(params.Content, comma)
		}

		name, ok := p.expect(IDENTIFIER)
		if !ok {
			return nil, false
		}

		colon, ok := p.expect(COLON)
		if !ok {
			return nil, false
		}

		typ, ok := p.parseTypeLabel()
		if !ok {
			return nil, false
		}

		params.Content = append(params.Content, &ASTBranch{Name: "param", Content: []ASTNode{name, colon, typ}})
	}

	rparen, ok := p.take()
	if !ok {
		return nil, false
	}

	params.Content = append(params.Content, rparen)
	return params, true
}

// task_decl = 'task' IDENTIFIER block ;
func (p *Parser) parseTaskDecl() (*ASTBranch, bool) {
	kw, ok := p.take()
	if !ok {
		return nil, false
	}

	name, ok := p.expect(IDENTIFIER)
	if !ok {
		return nil, false
	}

	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}

	return &ASTBranch{Name: "task_decl", Content: []ASTNode{kw, name, body}}, true
}

// if_stmt = 'if' expr block ['else' block] ;
func (p *Parser) parseIfStmt() (*ASTBranch, bool) {
	kw, ok := p.take()
	if !ok {
		return nil, false
	}

	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}

	ifStmt := &ASTBranch{Name: "if_stmt", Content: []ASTNode{kw, cond, body}}

	if p.got(ELSE) {
		elseKw, ok := p.take()
		if !ok {
			return nil, false
		}

		elseBody, ok := p.parseBlock()
		if !ok {
			return nil, false
		}

		ifStmt.Content = append(ifStmt.Content, elseKw, elseBody)
	}

	return ifStmt, true
}

// while_loop = 'while' expr block ;
func (p *Parser) parseWhileLoop() (*ASTBranch, bool) {
	kw, ok := p.take()
	if !ok {
		return nil, false
	}

	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}

	return &ASTBranch{Name: "while_loop", Content: []ASTNode{kw, cond, body}}, true
}

// for_loop = 'for' IDENTIFIER 'in' expr block ;
func (p *Parser) parseForLoop() (*ASTBranch, bool) {
	kw, ok := p.take()
	if !ok {
		return nil, false
	}

	iterName, ok := p.expect(IDENTIFIER)
	if !ok {
		return nil, false
	}

	in, ok := p.expect(IN)
	if !ok {
		return nil, false
	}

	coll, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}

	return &ASTBranch{Name: "for_loop", Content: []ASTNode{kw, iterName, in, coll, body}}, true
}

// break_stmt = 'break' ';' ;
func (p *Parser) parseBreakStmt() (*ASTBranch, bool) {
	kw, ok := p.take()
	if !ok {
		return nil, false
	}

	semi, ok := p.expect(SEMICOLON)
	if !ok {
		return nil, false
	}

	return &ASTBranch{Name: "break_stmt", Content: []ASTNode{kw, semi}}, true
}

// return_stmt = 'return' [expr] ';' ;
func (p *Parser) parseReturnStmt() (*ASTBranch, bool) {
	kw, ok := p.take()
	if !ok {
		return nil, false
	}

	ret := &ASTBranch{Name: "return_stmt", Content: []ASTNode{kw}}

	if !p.got(SEMICOLON) {
		value, ok := p.parseExpr()
		if !ok {
			return nil, false
		}

		ret.Content = append(ret.Content, value)
	}

	semi, ok := p.expect(SEMICOLON)
	if !ok {
		return nil, false
	}

	ret.Content = append(ret.Content, semi)
	return ret, true
}

// simple_stmt = incdec_stmt | assign_stmt | expr_stmt ;
// incdec_stmt = lvalue ('++' | '--') ';' ;
// assign_stmt = lvalue '=' expr ';' ;
// expr_stmt = expr ';' ;
func (p *Parser) parseSimpleStmt() (*ASTBranch, bool) {
	lhs, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	var stmt *ASTBranch
	switch p.tok.Kind {
	case INCREM, DECREM:
		if !p.checkAssignable(lhs) {
			return nil, false
		}

		op, ok := p.take()
		if !ok {
			return nil, false
		}

		stmt = &ASTBranch{Name: "incdec_stmt", Content: []ASTNode{lhs, op}}
	case ASSIGN:
		if !p.checkAssignable(lhs) {
			return nil, false
		}

		eq, ok := p.take()
		if !ok {
			return nil, false
		}

		rhs, ok := p.parseExpr()
		if !ok {
			return nil, false
		}

		stmt = &ASTBranch{Name: "assign_stmt", Content: []ASTNode{lhs, eq, rhs}}
	default:
		stmt = &ASTBranch{Name: "expr_stmt", Content: []ASTNode{lhs}}
	}

	semi, ok := p.expect(SEMICOLON)
	if !ok {
		return nil, false
	}

	stmt.Content = append(stmt.Content, semi)
	return stmt, true
}

// lvalue = IDENTIFIER | subscript_expr | member_expr ;
func (p *Parser) checkAssignable(node ASTNode) bool {
	switch v := node.(type) {
	case *ASTLeaf:
		if v.Kind == IDENTIFIER {
			return true
		}
	case *ASTBranch:
		if v.Name == "subscript_expr" || v.Name == "member_expr" {
			return true
		}
	}

	p.errorOn(node.Position(), "invalid assignment target")
	return false
}
