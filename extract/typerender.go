package extract

import (
	"strings"

	"github.com/umlforge/javauml/javaparse"
)

// renderType implements spec.md §4.B "Type rendering": a primitive
// renders as its keyword, a reference type renders as its simple name
// followed by `<A1, A2, ...>` for any generic arguments that carry a
// resolvable sub-type (bare, unbound wildcards are dropped), and array
// dimensions are appended using a stable, if unspecified, bracket
// convention.
func renderType(t *javaparse.TypeRef) string {
	if t == nil {
		return "void"
	}
	name := t.Name
	if args := renderTypeArgs(t.Args); args != "" {
		name += "<" + args + ">"
	}
	name += strings.Repeat("[]", t.ArrayDims)
	return name
}

func renderTypeArgs(args []*javaparse.TypeRef) string {
	var parts []string
	for _, a := range args {
		if a.Name == "?" && a.WildcardBound == nil {
			// pure wildcard with no bound: dropped per spec.md §4.B
			continue
		}
		if a.Name == "?" && a.WildcardBound != nil {
			parts = append(parts, renderType(a.WildcardBound))
			continue
		}
		parts = append(parts, renderType(a))
	}
	return strings.Join(parts, ", ")
}
