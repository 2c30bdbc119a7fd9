// Package javaparse is the Java AST front-end (spec.md §4.A): a
// hand-written recursive-descent parser for the subset of Java syntax the
// Structural Extractor needs. It does not attempt semantic analysis or
// error recovery — the first hard failure aborts the compilation unit,
// exactly as spec.md requires.
package javaparse

import (
	"fmt"
	"strings"

	"github.com/umlforge/javauml/models"
)

// parseError is the internal panic payload used to unwind out of deeply
// nested recursive-descent calls without threading error returns through
// every production. Parse (the exported entry point) and parser.try are
// the only places that recover it.
type parseError struct {
	line int
	msg  string
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) fail(format string, args ...any) {
	panic(parseError{line: p.peek().line, msg: fmt.Sprintf(format, args...)})
}

func (p *parser) peek() token      { return p.toks[p.pos] }
func (p *parser) peekAt(n int) token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}
func (p *parser) next() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}
func (p *parser) atEOF() bool { return p.peek().kind == tokEOF }

func (p *parser) atPunct(text string) bool {
	t := p.peek()
	return t.kind == tokPunct && t.text == text
}

func (p *parser) atIdentText(text string) bool {
	t := p.peek()
	return t.kind == tokIdent && t.text == text
}

func (p *parser) expect(text string) {
	if !p.atPunct(text) && !p.atIdentText(text) {
		p.fail("expected %q, got %q", text, p.peek().text)
	}
	p.next()
}

func (p *parser) expectIdent() string {
	if p.peek().kind != tokIdent {
		p.fail("expected identifier, got %q", p.peek().text)
	}
	return p.next().text
}

// try attempts fn speculatively: if fn panics with a parseError, the
// token position is rolled back and try reports failure; any other
// panic propagates. This is the backtracking primitive used to
// disambiguate a local variable declaration from an expression
// statement without a symbol table.
func (p *parser) try(fn func()) (ok bool) {
	save := p.pos
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(parseError); isParseErr {
				p.pos = save
				ok = false
				return
			}
			panic(r)
		}
	}()
	fn()
	return true
}

var modifierKeywords = map[string]bool{
	"public": true, "private": true, "protected": true, "static": true,
	"final": true, "abstract": true, "native": true, "synchronized": true,
	"transient": true, "volatile": true, "strictfp": true, "default": true,
	"sealed": true, "non-sealed": true,
}

// Parse turns one Java compilation unit's source text into a *File, or
// returns a *ParseError describing the first hard failure (spec.md §4.A).
func Parse(filename, src string) (file *File, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(parseError); ok {
				err = &ParseError{Filename: filename, Line: pe.line, Message: pe.msg}
				return
			}
			panic(r)
		}
	}()

	lx := newLexer(src)
	toks, lerr := lx.tokenize()
	if lerr != nil {
		return nil, &ParseError{Filename: filename, Message: lerr.Error()}
	}

	p := &parser{toks: toks}
	f := &File{}

	if p.atIdentText("package") {
		p.next()
		f.Package = p.parseQualifiedName()
		p.expect(";")
	}

	for p.atIdentText("import") {
		p.next()
		f.Imports = append(f.Imports, p.parseImportClause())
	}

	for !p.atEOF() {
		if p.atPunct(";") {
			p.next()
			continue
		}
		mods := p.parseModifiersAndAnnotations()
		f.Types = append(f.Types, p.parseTypeDecl(mods))
	}

	return f, nil
}

func (p *parser) parseQualifiedName() string {
	parts := []string{p.expectIdent()}
	for p.atPunct(".") {
		p.next()
		parts = append(parts, p.expectIdent())
	}
	return strings.Join(parts, ".")
}

func (p *parser) parseImportClause() Import {
	imp := Import{}
	if p.atIdentText("static") {
		p.next()
		imp.Static = true
	}
	parts := []string{p.expectIdent()}
	for p.atPunct(".") {
		p.next()
		if p.atPunct("*") {
			p.next()
			imp.OnDemand = true
			break
		}
		parts = append(parts, p.expectIdent())
	}
	p.expect(";")
	imp.Path = strings.Join(parts, ".")
	return imp
}

func (p *parser) parseModifiersAndAnnotations() []string {
	var mods []string
	for {
		if p.atPunct("@") && !(p.peekAt(1).kind == tokIdent && p.peekAt(1).text == "interface") {
			p.next()
			p.parseQualifiedName()
			if p.atPunct("(") {
				p.skipBalanced("(", ")")
			}
			continue
		}
		if p.peek().kind == tokIdent && modifierKeywords[p.peek().text] {
			mods = append(mods, p.next().text)
			continue
		}
		break
	}
	return mods
}

func (p *parser) isTypeDeclStart() bool {
	if p.atIdentText("class") || p.atIdentText("interface") || p.atIdentText("enum") {
		return true
	}
	return p.atPunct("@") && p.peekAt(1).kind == tokIdent && p.peekAt(1).text == "interface"
}

// parseTypeDecl parses a class/interface/enum/annotation-type
// declaration. Annotation types (`@interface`) are modelled as
// interfaces — a deliberate simplification; the spec has no dedicated
// kind for them and their member shape (no-arg methods) matches an
// interface's closely enough for diagramming purposes.
func (p *parser) parseTypeDecl(mods []string) *TypeDecl {
	if p.atPunct("@") {
		p.next()
	}

	var kind models.ClassKind
	switch p.peek().text {
	case "class":
		kind = models.KindClass
	case "interface":
		kind = models.KindInterface
	case "enum":
		kind = models.KindEnum
	default:
		p.fail("expected class/interface/enum declaration, got %q", p.peek().text)
	}
	p.next()

	name := p.expectIdent()
	td := &TypeDecl{Kind: kind, Name: name, Modifiers: mods}

	if p.atPunct("<") {
		p.skipTypeParams()
	}

	if kind != models.KindEnum && p.atIdentText("extends") {
		p.next()
		if kind == models.KindInterface {
			td.Extends = p.parseType()
			for p.atPunct(",") {
				p.next()
				p.parseType() // interface extends is lossy: first only (spec.md §9)
			}
		} else {
			td.Extends = p.parseType()
		}
	}

	if p.atIdentText("implements") {
		p.next()
		td.Implements = append(td.Implements, p.parseType())
		for p.atPunct(",") {
			p.next()
			td.Implements = append(td.Implements, p.parseType())
		}
	}

	if kind == models.KindEnum {
		p.parseEnumBody(td)
	} else {
		p.expect("{")
		p.parseMembers(td)
		p.expect("}")
	}
	return td
}

func (p *parser) parseEnumBody(td *TypeDecl) {
	p.expect("{")
	if !p.atPunct(";") && !p.atPunct("}") {
		for {
			p.parseModifiersAndAnnotations() // annotations on enum constants
			td.EnumConstants = append(td.EnumConstants, p.expectIdent())
			if p.atPunct("(") {
				p.skipBalanced("(", ")")
			}
			if p.atPunct("{") {
				p.skipBalanced("{", "}") // anonymous constant body, discarded
			}
			if p.atPunct(",") {
				p.next()
				if p.atPunct(";") || p.atPunct("}") {
					break
				}
				continue
			}
			break
		}
	}
	if p.atPunct(";") {
		p.next()
		p.parseMembers(td)
	}
	p.expect("}")
}

// parseMembers parses class-body-style members: nested types, fields,
// methods, constructors (discarded — javalang-style extraction never
// surfaces constructors as methods either) and initializer blocks
// (discarded, spec.md has no tag for them).
func (p *parser) parseMembers(td *TypeDecl) {
	for !p.atPunct("}") && !p.atEOF() {
		if p.atPunct(";") {
			p.next()
			continue
		}
		mods := p.parseModifiersAndAnnotations()

		if p.isTypeDeclStart() {
			td.NestedTypes = append(td.NestedTypes, p.parseTypeDecl(mods))
			continue
		}
		if p.atPunct("{") {
			p.skipBalanced("{", "}")
			continue
		}
		if p.atPunct("<") {
			p.skipTypeParams()
		}
		if p.peek().kind == tokIdent && p.peek().text == td.Name && p.peekAt(1).kind == tokPunct && p.peekAt(1).text == "(" {
			p.next()
			p.parseParamList()
			p.skipThrowsClause()
			if p.atPunct("{") {
				p.skipBalanced("{", "}")
			} else {
				p.expect(";")
			}
			continue
		}

		typ := p.parseType()
		name := p.expectIdent()

		if p.atPunct("(") {
			m := &MethodDecl{Name: name, Modifiers: mods}
			if typ.Name == "void" && len(typ.Args) == 0 && typ.ArrayDims == 0 {
				m.IsVoid = true
			} else {
				m.ReturnType = typ
			}
			m.Parameters = p.parseParamList()
			for p.atPunct("[") {
				p.next()
				p.expect("]")
			}
			p.skipThrowsClause()
			if p.atIdentText("default") {
				p.next()
				p.skipInitializer() // annotation element default value
			}
			if p.atPunct("{") {
				m.HasBody = true
				m.Body = p.parseBlock()
			} else {
				p.expect(";")
			}
			td.Methods = append(td.Methods, m)
			continue
		}

		fd := &FieldDecl{Modifiers: mods, Type: typ}
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
			fd.Declarators = append(fd.Declarators, d)
			if p.atPunct(",") {
				p.next()
				name = p.expectIdent()
				continue
			}
			break
		}
		p.expect(";")
		td.Fields = append(td.Fields, fd)
	}
}

func (p *parser) skipThrowsClause() {
	if p.atIdentText("throws") {
		p.next()
		p.parseType()
		for p.atPunct(",") {
			p.next()
			p.parseType()
		}
	}
}

func (p *parser) parseParamList() []*Param {
	p.expect("(")
	var params []*Param
	if p.atPunct(")") {
		p.next()
		return params
	}
	for {
		p.parseModifiersAndAnnotations() // "final", parameter annotations
		if p.atPunct("<") {
			p.skipTypeParams()
		}
		typ := p.parseType()
		if p.atPunct("...") {
			p.next()
			typ.ArrayDims++
		}
		name := p.expectIdent()
		for p.atPunct("[") {
			p.next()
			p.expect("]")
			typ.ArrayDims++
		}
		params = append(params, &Param{Name: name, Type: typ})
		if p.atPunct(",") {
			p.next()
			continue
		}
		break
	}
	p.expect(")")
	return params
}

// parseType parses a field/parameter/return type reference: a primitive
// keyword or a (possibly dotted) reference type with optional generic
// arguments and array dimensions.
func (p *parser) parseType() *TypeRef {
	if p.peek().kind != tokIdent {
		p.fail("expected type, got %q", p.peek().text)
	}
	name := p.next().text
	for p.atPunct(".") {
		p.next()
		name = p.expectIdent() // keep only the last segment (simple name)
	}
	ref := &TypeRef{Name: name}
	if p.atPunct("<") {
		ref.Args = p.parseTypeArgs()
	}
	for p.atPunct("[") {
		p.next()
		p.expect("]")
		ref.ArrayDims++
	}
	return ref
}

func (p *parser) parseTypeArgs() []*TypeRef {
	p.expect("<")
	var args []*TypeRef
	if p.atGT() {
		p.consumeGT()
		return args
	}
	for {
		if p.atPunct("?") {
			p.next()
			var bound *TypeRef
			if p.atIdentText("extends") || p.atIdentText("super") {
				p.next()
				bound = p.parseType()
			}
			args = append(args, &TypeRef{Name: "?", WildcardBound: bound})
		} else {
			args = append(args, p.parseType())
		}
		if p.atPunct(",") {
			p.next()
			continue
		}
		break
	}
	p.consumeGT()
	return args
}

// atGT / consumeGT cope with the lexer greedily scanning ">>"/">>>" as
// shift operators: closing nested generics (List<List<String>>) needs to
// split such a token and consume just one '>'.
func (p *parser) atGT() bool {
	t := p.peek()
	return t.kind == tokPunct && len(t.text) > 0 && t.text[0] == '>'
}

func (p *parser) consumeGT() {
	if !p.atGT() {
		p.fail("expected '>', got %q", p.peek().text)
	}
	t := p.toks[p.pos]
	if len(t.text) == 1 {
		p.pos++
		return
	}
	p.toks[p.pos].text = t.text[1:]
}

func (p *parser) skipTypeParams() {
	p.expect("<")
	depth := 1
	for depth > 0 {
		t := p.peek()
		if t.kind == tokEOF {
			p.fail("unterminated type parameter list")
		}
		if t.kind == tokPunct && t.text == "<" {
			depth++
			p.next()
			continue
		}
		if t.kind == tokPunct && len(t.text) > 0 && t.text[0] == '>' {
			if len(t.text) == 1 {
				p.pos++
			} else {
				p.toks[p.pos].text = t.text[1:]
			}
			depth--
			continue
		}
		p.next()
	}
}

func (p *parser) skipBalanced(open, close string) {
	p.expect(open)
	depth := 1
	for depth > 0 {
		t := p.peek()
		if t.kind == tokEOF {
			p.fail("unterminated %q group", open)
		}
		if t.kind == tokPunct && t.text == open {
			depth++
		}
		if t.kind == tokPunct && t.text == close {
			depth--
		}
		p.next()
	}
}

// skipInitializer consumes a field/local-variable initializer expression
// up to (but not including) the next top-level comma or semicolon.
func (p *parser) skipInitializer() {
	depth := 0
	for {
		t := p.peek()
		if t.kind == tokEOF {
			p.fail("unexpected EOF in initializer")
		}
		if depth == 0 && t.kind == tokPunct && (t.text == "," || t.text == ";") {
			return
		}
		if t.kind == tokPunct && (t.text == "(" || t.text == "[" || t.text == "{") {
			depth++
		}
		if t.kind == tokPunct && (t.text == ")" || t.text == "]" || t.text == "}") {
			depth--
		}
		p.next()
	}
}

// skipUntilMatchingParen consumes tokens through the ')' matching a '('
// already consumed by the caller (used for for-loop headers, whose
// condition text spec.md §4.B explicitly does not extract).
func (p *parser) skipUntilMatchingParen() {
	depth := 1
	for depth > 0 {
		t := p.peek()
		if t.kind == tokEOF {
			p.fail("unterminated for-statement header")
		}
		if t.kind == tokPunct && t.text == "(" {
			depth++
		}
		if t.kind == tokPunct && t.text == ")" {
			depth--
		}
		p.next()
	}
}
