package syntax

// type_label = base_type {'?'} ;
func (p *Parser) parseTypeLabel() (ASTNode, bool) {
	typ, ok := p.parseBaseType()
	if !ok {
		return nil, false
	}

	for p.got(QUESTION) {
		question, ok := p.take()
		if !ok {
			return nil, false
		}

		typ = &ASTBranch{Name: "optional_type", Content: []ASTNode{typ, question}}
	}

	return typ, true
}

// base_type = array_type | func_type | IDENTIFIER ;
// array_type = '[' type_label ']' ;
// func_type = '(' [type_label {',' type_label}] ')' '->' type_label ;
func (p *Parser) parseBaseType() (ASTNode, bool) {
	switch p.tok.Kind {
	case IDENTIFIER:
		return p.take()
	case LBRACKET:
		lbracket, ok := p.take()
		if !ok {
			return nil, false
		}

		elemType, ok := p.parseTypeLabel()
		if !ok {
			return nil, false
		}

		rbracket, ok := p.expect(RBRACKET)
		if !ok {
			return nil, false
		}

		return &ASTBranch{Name: "array_type", Content: []ASTNode{lbracket, elemType, rbracket}}, true
	case LPAREN:
		lparen, ok := p.take()
		if !ok {
			return nil, false
		}

		fnType := &ASTBranch{Name: "func_type", Content: []ASTNode{lparen}}
		for !p.got(RPAREN) {
			if len(fnType.Content) > 1 {
				comma, ok := p.expect(COMMA)
				if !ok {
					return nil, false
				}

				fnType.Content = append(fnType.Content, comma)
			}

			paramType, ok := p.parseTypeLabel()
			if !ok {
				return nil, false
			}

			fnType.Content = append(fnType.Content, paramType)
		}

		rparen, ok := p.take()
		if !ok {
			return nil, false
		}

		arrow, ok := p.expect(ARROW)
		if !ok {
			return nil, false
		}

		rtType, ok := p.parseTypeLabel()
		if !ok {
			return nil, false
		}

		fnType.Content = append(fnType.Content, rparen, arrow, rtType)
		return fnType, true
	}

	p.rejectWithMsg("expected a type but found %s", p.describeTok())
	return nil, false
}
