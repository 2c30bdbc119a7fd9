package extract

import (
	"fmt"

	"github.com/umlforge/javauml/javaparse"
)

// renderExpr is the total expression renderer required by spec.md §4.B:
// it never fails, so body linearisation can always proceed. Member
// references, bare identifiers, method calls, binary operations,
// literals, `this` and constructor calls get bespoke text; everything
// else falls back to its node-kind name.
func renderExpr(e javaparse.Expr) string {
	switch n := e.(type) {
	case nil:
		return ""
	case *javaparse.FieldAccessExpr:
		if n.Qualifier != nil {
			return renderExpr(n.Qualifier) + "." + n.Member
		}
		return n.Member
	case *javaparse.MethodCallExpr:
		if n.Qualifier != nil {
			return renderExpr(n.Qualifier) + "." + n.Member + "()"
		}
		return n.Member + "()"
	case *javaparse.BinaryExpr:
		return fmt.Sprintf("%s %s %s", renderExpr(n.Left), n.Op, renderExpr(n.Right))
	case *javaparse.LiteralExpr:
		return n.Text
	case *javaparse.ThisExpr:
		return "this"
	case *javaparse.NewExpr:
		return "new " + n.TypeName + "()"
	case *javaparse.IdentExpr:
		// A bare identifier is a member reference with no qualifier.
		return n.Name
	case *javaparse.OtherExpr:
		return n.Kind
	default:
		return fmt.Sprintf("%T", e)
	}
}
