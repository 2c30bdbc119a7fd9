package javaparse

import "github.com/umlforge/javauml/models"

// File is the root of a parsed Java compilation unit. The Extractor
// (package extract) is the only consumer; the tree is discarded once it
// has been walked (spec.md §3 "Lifecycle").
type File struct {
	Package string
	Imports []Import
	Types   []*TypeDecl
}

// Import is one import declaration. Nothing downstream reads it, but it
// is kept as its own node per spec.md §4.A's minimum support list.
type Import struct {
	Path     string
	Static   bool
	OnDemand bool
}

// TypeRef is a textual type reference: a primitive keyword, or a simple
// reference-type name with zero or more generic arguments and array
// dimensions. Rendering it to the final string form is the Extractor's
// job (spec.md §4.B "Type rendering"); the parser just records structure.
type TypeRef struct {
	Name       string // simple name, or primitive keyword, or "?" for a bare wildcard
	Args       []*TypeRef
	ArrayDims  int
	WildcardBound *TypeRef // non-nil for "? extends X" / "? super X"
}

// TypeDecl is a class, interface or enum declaration, possibly nested.
type TypeDecl struct {
	Kind          models.ClassKind
	Name          string
	Modifiers     []string
	Extends       *TypeRef   // class: single superclass; interface: first superinterface only (spec.md §9)
	Implements    []*TypeRef
	EnumConstants []string
	Fields        []*FieldDecl
	Methods       []*MethodDecl
	NestedTypes   []*TypeDecl
}

// FieldDecl is one field-declaration statement, which may declare several
// variables sharing a modifier set and base type.
type FieldDecl struct {
	Modifiers   []string
	Type        *TypeRef
	Declarators []Declarator
}

// Declarator is one variable name within a field or local-variable
// declaration, with however many extra `[]` it carries after its name.
type Declarator struct {
	Name      string
	ExtraDims int
}

// Param is a single method/constructor parameter.
type Param struct {
	Name string
	Type *TypeRef
}

// MethodDecl is a method declaration. Constructors are skipped by the
// parser and never produce one.
type MethodDecl struct {
	Name        string
	Modifiers   []string
	ReturnType  *TypeRef // nil for an explicit void
	IsVoid      bool
	Parameters  []*Param
	Body        []Stmt // nil when the method has no body (abstract/interface)
	HasBody     bool
}

// ---- Statements ----

// Stmt is the sealed interface implemented by every statement node the
// parser is able to classify. Anything it cannot classify is dropped
// during parsing and never reaches the Extractor (spec.md §4.B "Unknown
// or unclassified statements are dropped").
type Stmt interface{ stmtNode() }

type IfStmt struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
	HasElse bool
}

type ForStmt struct{ Body []Stmt }

type WhileStmt struct {
	Cond Expr
	Body []Stmt
}

type TryStmt struct {
	Block   []Stmt
	Catches []CatchClause
}

type CatchClause struct {
	Param string
	Block []Stmt
}

type SwitchStmt struct {
	Expr  Expr
	Cases []CaseClause
}

type CaseClause struct {
	Labels     []Expr
	IsDefault  bool
	Statements []Stmt
}

type ReturnStmt struct {
	Expr    Expr // nil for a bare "return;"
	HasExpr bool
}

type ThrowStmt struct{ Expr Expr }

type ExprStmt struct{ Expr Expr }

type LocalVarDecl struct {
	Type        *TypeRef
	Declarators []Declarator
}

func (*IfStmt) stmtNode()       {}
func (*ForStmt) stmtNode()      {}
func (*WhileStmt) stmtNode()    {}
func (*TryStmt) stmtNode()      {}
func (*SwitchStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()   {}
func (*ThrowStmt) stmtNode()    {}
func (*ExprStmt) stmtNode()     {}
func (*LocalVarDecl) stmtNode() {}

// ---- Expressions ----

// Expr is the sealed interface for the small expression grammar the
// renderer in package extract understands. Anything else parses into
// OtherExpr carrying the node-kind name, which the renderer falls back
// to verbatim (spec.md §4.B: "any other expression node -> the
// unqualified grammar node kind name").
type Expr interface{ exprNode() }

type IdentExpr struct{ Name string }

type FieldAccessExpr struct {
	Qualifier Expr // nil when unqualified
	Member    string
}

type MethodCallExpr struct {
	Qualifier Expr // nil when unqualified
	Member    string
	Args      []Expr
}

type BinaryExpr struct {
	Left  Expr
	Op    string
	Right Expr
}

type LiteralExpr struct{ Text string }

type ThisExpr struct{}

type NewExpr struct {
	TypeName string
	Args     []Expr
}

// OtherExpr is the fallback for the parsed expression shapes outside the
// small set above: unary and postfix ops, array access, array creation
// and qualified `.class`/`.this`/`.new` forms. Casts, lambdas and
// ternaries are not parsed; a statement containing one fails to parse.
type OtherExpr struct{ Kind string }

func (*IdentExpr) exprNode()       {}
func (*FieldAccessExpr) exprNode() {}
func (*MethodCallExpr) exprNode()  {}
func (*BinaryExpr) exprNode()      {}
func (*LiteralExpr) exprNode()     {}
func (*ThisExpr) exprNode()        {}
func (*NewExpr) exprNode()         {}
func (*OtherExpr) exprNode()       {}
