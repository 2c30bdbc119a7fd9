package javaparse

// parseBlock parses a `{ ... }` and returns its flattened statement list.
func (p *parser) parseBlock() []Stmt {
	p.expect("{")
	stmts := p.parseStmtsUntil("}")
	p.expect("}")
	return stmts
}

func (p *parser) parseStmtsUntil(closeText string) []Stmt {
	var out []Stmt
	for !p.atPunct(closeText) && !p.atEOF() {
		out = append(out, p.parseStatement()...)
	}
	return out
}

// parseSingleOrBlock parses the body of an if/for/while/do arm, which in
// Java may be either a brace-delimited block or a single bare statement.
func (p *parser) parseSingleOrBlock() []Stmt {
	if p.atPunct("{") {
		return p.parseBlock()
	}
	return p.parseStatement()
}

// parseStatement parses one Java statement and returns the Stmt nodes it
// contributes to the enclosing sequence (zero for statements the spec
// assigns no tag to, one for most, or several when a bare nested block
// is flattened inline).
func (p *parser) parseStatement() []Stmt {
	switch {
	case p.atPunct(";"):
		p.next()
		return nil

	case p.atPunct("{"):
		return p.parseBlock()

	case p.atIdentText("if"):
		p.next()
		p.expect("(")
		cond := p.parseExpr(0)
		p.expect(")")
		st := &IfStmt{Cond: cond, Then: p.parseSingleOrBlock()}
		if p.atIdentText("else") {
			p.next()
			st.HasElse = true
			st.Else = p.parseSingleOrBlock()
		}
		return []Stmt{st}

	case p.atIdentText("for"):
		p.next()
		p.expect("(")
		p.skipUntilMatchingParen()
		return []Stmt{&ForStmt{Body: p.parseSingleOrBlock()}}

	case p.atIdentText("while"):
		p.next()
		p.expect("(")
		cond := p.parseExpr(0)
		p.expect(")")
		return []Stmt{&WhileStmt{Cond: cond, Body: p.parseSingleOrBlock()}}

	case p.atIdentText("do"):
		p.next()
		body := p.parseSingleOrBlock()
		p.expect("while")
		p.expect("(")
		cond := p.parseExpr(0)
		p.expect(")")
		p.expect(";")
		// do/while has no dedicated tag; rendered identically to while
		// (spec.md only defines FOR/WHILE for loop constructs).
		return []Stmt{&WhileStmt{Cond: cond, Body: body}}

	case p.atIdentText("try"):
		p.next()
		if p.atPunct("(") {
			p.skipBalanced("(", ")") // try-with-resources header, discarded
		}
		st := &TryStmt{Block: p.parseBlock()}
		for p.atIdentText("catch") {
			p.next()
			p.expect("(")
			p.parseModifiersAndAnnotations()
			p.parseType()
			for p.atPunct("|") {
				p.next()
				p.parseType()
			}
			paramName := p.expectIdent()
			p.expect(")")
			st.Catches = append(st.Catches, CatchClause{Param: paramName, Block: p.parseBlock()})
		}
		if p.atIdentText("finally") {
			p.next()
			p.parseBlock() // discarded; spec.md has no ENDFINALLY tag
		}
		return []Stmt{st}

	case p.atIdentText("switch"):
		return []Stmt{p.parseSwitch()}

	case p.atIdentText("return"):
		p.next()
		if p.atPunct(";") {
			p.next()
			return []Stmt{&ReturnStmt{}}
		}
		e := p.parseExpr(0)
		p.expect(";")
		return []Stmt{&ReturnStmt{Expr: e, HasExpr: true}}

	case p.atIdentText("throw"):
		p.next()
		e := p.parseExpr(0)
		p.expect(";")
		return []Stmt{&ThrowStmt{Expr: e}}

	case p.atIdentText("break") || p.atIdentText("continue"):
		p.next()
		if p.peek().kind == tokIdent && !p.atPunct(";") {
			p.next() // optional label
		}
		p.expect(";")
		return nil

	case p.atIdentText("assert"):
		p.next()
		p.parseExpr(0)
		if p.atPunct(":") {
			p.next()
			p.parseExpr(0)
		}
		p.expect(";")
		return nil

	case p.atIdentText("synchronized") && p.peekAt(1).text == "(":
		p.next()
		p.expect("(")
		p.parseExpr(0)
		p.expect(")")
		return p.parseBlock()

	case p.atIdentText("yield"):
		p.next()
		p.parseExpr(0)
		p.expect(";")
		return nil

	default:
		if s, ok := p.tryLocalVarDecl(); ok {
			return []Stmt{s}
		}
		e := p.parseExpr(0)
		p.expect(";")
		return []Stmt{&ExprStmt{Expr: e}}
	}
}

func (p *parser) parseSwitch() Stmt {
	p.next()
	p.expect("(")
	expr := p.parseExpr(0)
	p.expect(")")
	p.expect("{")

	st := &SwitchStmt{Expr: expr}
	for !p.atPunct("}") && !p.atEOF() {
		cc := CaseClause{}
		if p.atIdentText("default") {
			p.next()
			cc.IsDefault = true
		} else {
			p.expect("case")
			cc.Labels = append(cc.Labels, p.parseExpr(0))
			for p.atPunct(",") {
				p.next()
				cc.Labels = append(cc.Labels, p.parseExpr(0))
			}
		}
		if p.atPunct("->") {
			p.next()
			if p.atPunct("{") {
				cc.Statements = append(cc.Statements, p.parseBlock()...)
			} else if p.atIdentText("throw") {
				cc.Statements = append(cc.Statements, p.parseStatement()...)
			} else {
				// arrow-style expression case; render as a single call.
				e := p.parseExpr(0)
				p.expect(";")
				cc.Statements = append(cc.Statements, &ExprStmt{Expr: e})
			}
		} else {
			p.expect(":")
			for !p.atIdentText("case") && !p.atIdentText("default") && !p.atPunct("}") && !p.atEOF() {
				cc.Statements = append(cc.Statements, p.parseStatement()...)
			}
		}
		st.Cases = append(st.Cases, cc)
	}
	p.expect("}")
	return st
}

// tryLocalVarDecl speculatively parses a local variable declaration,
// backtracking if the token shape doesn't match one (e.g. it was really
// an expression statement like a bare method call).
func (p *parser) tryLocalVarDecl() (Stmt, bool) {
	var result *LocalVarDecl
	ok := p.try(func() {
		p.parseModifiersAndAnnotations()
		typ := p.parseType()
		name := p.expectIdent()
		if !(p.atPunct("=") || p.atPunct(";") || p.atPunct(",") || p.atPunct("[")) {
			p.fail("not a local variable declaration")
		}
		var decls []Declarator
		for {
			d := Declarator{Name: name}
			for p.atPunct("[") {
				p.next()
				p.expect("]")
				d.ExtraDims++
			}
			if p.atPunct("=") {
				p.next()
				p.skipInitializer()
			}
			decls = append(decls, d)
			if p.atPunct(",") {
				p.next()
				name = p.expectIdent()
				continue
			}
			break
		}
		p.expect(";")
		result = &LocalVarDecl{Type: typ, Declarators: decls}
	})
	if !ok || result == nil {
		return nil, false
	}
	return result, true
}
