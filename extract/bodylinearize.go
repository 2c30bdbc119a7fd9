package extract

import (
	"fmt"
	"strings"

	"github.com/umlforge/javauml/javaparse"
)

// linearizeBody flattens a method body into the tagged sequence
// described by spec.md §4.B. It mirrors the recursive descent of the
// parser itself: each composite statement emits its opening tag, then
// the linearisation of its nested statement lists, then its closing
// tag(s).
func linearizeBody(stmts []javaparse.Stmt) []string {
	var out []string
	for _, s := range stmts {
		out = append(out, linearizeStmt(s)...)
	}
	return out
}

func linearizeStmt(s javaparse.Stmt) []string {
	switch st := s.(type) {
	case *javaparse.IfStmt:
		var out []string
		out = append(out, "IF:"+renderExpr(st.Cond))
		out = append(out, linearizeBody(st.Then)...)
		out = append(out, "ENDIF")
		if st.HasElse {
			out = append(out, "ELSE")
			out = append(out, linearizeBody(st.Else)...)
			out = append(out, "ENDELSE")
		}
		return out

	case *javaparse.ForStmt:
		var out []string
		out = append(out, "FOR:loop")
		out = append(out, linearizeBody(st.Body)...)
		out = append(out, "ENDFOR")
		return out

	case *javaparse.WhileStmt:
		var out []string
		out = append(out, "WHILE:"+renderExpr(st.Cond))
		out = append(out, linearizeBody(st.Body)...)
		out = append(out, "ENDWHILE")
		return out

	case *javaparse.TryStmt:
		var out []string
		out = append(out, "TRY")
		out = append(out, linearizeBody(st.Block)...)
		out = append(out, "ENDTRY")
		for _, c := range st.Catches {
			ident := c.Param
			if ident == "" {
				ident = "e"
			}
			out = append(out, "CATCH:"+ident)
			out = append(out, linearizeBody(c.Block)...)
			out = append(out, "ENDCATCH")
		}
		return out

	case *javaparse.SwitchStmt:
		var out []string
		out = append(out, "SWITCH:"+renderExpr(st.Expr))
		for _, c := range st.Cases {
			label := "default"
			if !c.IsDefault {
				parts := make([]string, 0, len(c.Labels))
				for _, l := range c.Labels {
					parts = append(parts, renderExpr(l))
				}
				label = strings.Join(parts, ", ")
			}
			out = append(out, "CASE:"+label)
			out = append(out, linearizeBody(c.Statements)...)
		}
		out = append(out, "ENDSWITCH")
		return out

	case *javaparse.ReturnStmt:
		if st.HasExpr {
			return []string{"RETURN:" + renderExpr(st.Expr)}
		}
		return []string{"RETURN:"}

	case *javaparse.ThrowStmt:
		return []string{"THROW:" + renderExpr(st.Expr)}

	case *javaparse.ExprStmt:
		return []string{"CALL:" + renderExpr(st.Expr)}

	case *javaparse.LocalVarDecl:
		typeName := renderType(st.Type)
		out := make([]string, 0, len(st.Declarators))
		for _, d := range st.Declarators {
			out = append(out, fmt.Sprintf("VAR:%s %s", typeName, d.Name))
		}
		return out

	default:
		// Unknown/unclassified statement: dropped silently (spec.md §4.B).
		return nil
	}
}
