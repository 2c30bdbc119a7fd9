package javaparse

// binaryPrecedence ranks Java's binary operators from loosest (0) to
// tightest; assignment sits at the bottom since it binds the most
// loosely of all. An operator absent from the table (the ternary `?`,
// a lambda's `->`, etc.) ends the climb; the caller then fails on it as
// an unexpected token.
var binaryPrecedence = map[string]int{
	"=": 0, "+=": 0, "-=": 0, "*=": 0, "/=": 0, "%=": 0,
	"&=": 0, "|=": 0, "^=": 0, "<<=": 0, ">>=": 0, ">>>=": 0,
	"||": 1,
	"&&": 2,
	"|":  3,
	"^":  4,
	"&":  5,
	"==": 6, "!=": 6,
	"<": 7, ">": 7, "<=": 7, ">=": 7, "instanceof": 7,
	"<<": 8, ">>": 8, ">>>": 8,
	"+": 9, "-": 9,
	"*": 10, "/": 10, "%": 10,
}

// assignmentOps are right-associative: "a = b = c" binds as "a = (b = c)".
var assignmentOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true, "<<=": true, ">>=": true, ">>>=": true,
}

// parseExpr parses a binary-operator expression using precedence
// climbing, bottoming out at parseUnary for operands.
func (p *parser) parseExpr(minPrec int) Expr {
	left := p.parseUnary()
	for {
		t := p.peek()
		opText := t.text
		if t.kind == tokIdent && t.text == "instanceof" {
			opText = "instanceof"
		} else if t.kind != tokPunct {
			break
		}
		prec, isBinary := binaryPrecedence[opText]
		if !isBinary || prec < minPrec {
			break
		}
		p.next()
		if opText == "instanceof" {
			rhsType := p.parseType()
			left = &BinaryExpr{Left: left, Op: opText, Right: &IdentExpr{Name: rhsType.Name}}
			// optional pattern variable binding (Java 16+): `x instanceof Foo f`
			if p.peek().kind == tokIdent {
				p.next()
			}
			continue
		}
		var right Expr
		if assignmentOps[opText] {
			right = p.parseExpr(prec) // right-associative
		} else {
			right = p.parseExpr(prec + 1)
		}
		left = &BinaryExpr{Left: left, Op: opText, Right: right}
	}
	return left
}

func (p *parser) parseUnary() Expr {
	t := p.peek()
	switch {
	case t.kind == tokPunct && (t.text == "!" || t.text == "~" || t.text == "+" || t.text == "-" || t.text == "++" || t.text == "--"):
		p.next()
		p.parseUnary()
		return &OtherExpr{Kind: "UnaryExpr"}
	default:
		return p.parsePostfix()
	}
}

func (p *parser) parsePostfix() Expr {
	e := p.parsePrimary()
	for {
		switch {
		case p.atPunct("."):
			p.next()
			if p.atIdentText("class") || p.atIdentText("this") || p.atIdentText("new") {
				p.next()
				e = &OtherExpr{Kind: "QualifiedExpr"}
				continue
			}
			member := p.expectIdent()
			if p.atPunct("(") {
				args := p.parseArgs()
				e = &MethodCallExpr{Qualifier: e, Member: member, Args: args}
			} else {
				e = &FieldAccessExpr{Qualifier: e, Member: member}
			}
		case p.atPunct("(") && isCallable(e):
			if id, ok := e.(*IdentExpr); ok {
				args := p.parseArgs()
				e = &MethodCallExpr{Member: id.Name, Args: args}
			}
		case p.atPunct("["):
			p.skipBalanced("[", "]")
			e = &OtherExpr{Kind: "ArrayAccess"}
		case p.atPunct("++") || p.atPunct("--"):
			p.next()
			e = &OtherExpr{Kind: "PostfixExpr"}
		default:
			return e
		}
	}
}

func isCallable(e Expr) bool {
	_, ok := e.(*IdentExpr)
	return ok
}

func (p *parser) parseArgs() []Expr {
	p.expect("(")
	var args []Expr
	if p.atPunct(")") {
		p.next()
		return args
	}
	for {
		args = append(args, p.parseExpr(0))
		if p.atPunct(",") {
			p.next()
			continue
		}
		break
	}
	p.expect(")")
	return args
}

func (p *parser) parsePrimary() Expr {
	t := p.peek()
	switch {
	case t.kind == tokIntLit || t.kind == tokFloatLit || t.kind == tokStringLit || t.kind == tokCharLit:
		p.next()
		return &LiteralExpr{Text: t.text}

	case t.kind == tokIdent && (t.text == "true" || t.text == "false" || t.text == "null"):
		p.next()
		return &LiteralExpr{Text: t.text}

	case t.kind == tokIdent && t.text == "this":
		p.next()
		return &ThisExpr{}

	case t.kind == tokIdent && t.text == "super":
		p.next()
		return &IdentExpr{Name: "super"}

	case t.kind == tokIdent && t.text == "new":
		return p.parseNewExpr()

	case t.kind == tokPunct && t.text == "(":
		p.next()
		inner := p.parseExpr(0)
		p.expect(")")
		return inner

	case t.kind == tokIdent:
		p.next()
		return &IdentExpr{Name: t.text}

	default:
		p.fail("unexpected token in expression: %q", t.text)
		return nil
	}
}

func (p *parser) parseNewExpr() Expr {
	p.next() // "new"
	name := p.expectIdent()
	for p.atPunct(".") {
		p.next()
		name = p.expectIdent()
	}
	if p.atPunct("<") {
		p.parseTypeArgs()
	}
	if p.atPunct("(") {
		args := p.parseArgs()
		if p.atPunct("{") {
			p.skipBalanced("{", "}") // anonymous class body, discarded
		}
		return &NewExpr{TypeName: name, Args: args}
	}
	// array creation: new T[...]  or  new T[]{...}
	for p.atPunct("[") {
		p.skipBalanced("[", "]")
	}
	if p.atPunct("{") {
		p.skipBalanced("{", "}")
	}
	return &OtherExpr{Kind: "ArrayCreation"}
}
