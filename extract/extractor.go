// Package extract is the Structural Extractor (spec.md §4.B): it walks a
// *javaparse.File and produces the flat []models.ClassInfo the diagram
// generators consume. It never fails — the expression renderer is total
// and unclassified statements are simply dropped.
package extract

import (
	"github.com/umlforge/javauml/javaparse"
	"github.com/umlforge/javauml/models"
)

// Extract walks every top-level and nested type declaration in source
// order and returns one models.ClassInfo per declaration, preserving the
// ordering guarantees of spec.md §4.B: fields precede methods, items
// within each kind keep source order, and enum constants precede fields
// and methods.
func Extract(file *javaparse.File) []models.ClassInfo {
	var out []models.ClassInfo
	for _, td := range file.Types {
		out = append(out, extractType(td)...)
	}
	return out
}

// extractType flattens one type declaration and its nested declarations,
// in that order — the traversal policy spec.md §4.B describes as "a
// compilation unit with N top-level type declarations yields N ClassInfo
// values" with nested declarations "collected by the same top-level
// enumeration" (order among nested types left unspecified by the spec;
// this implementation emits the outer type before its nested types).
func extractType(td *javaparse.TypeDecl) []models.ClassInfo {
	ci := models.ClassInfo{
		Name:      td.Name,
		Kind:      td.Kind,
		Modifiers: td.Modifiers,
	}

	if td.Kind != models.KindEnum {
		if td.Extends != nil {
			ci.Extends = renderType(td.Extends)
		}
	}
	for _, impl := range td.Implements {
		ci.Implements = append(ci.Implements, renderType(impl))
	}

	if td.Kind == models.KindEnum {
		ci.EnumConstants = append(ci.EnumConstants, td.EnumConstants...)
	}

	for _, fd := range td.Fields {
		typeName := renderType(fd.Type)
		for _, d := range fd.Declarators {
			ci.Fields = append(ci.Fields, models.FieldInfo{
				Name:      d.Name,
				Type:      typeName + arrayDims(d.ExtraDims),
				Modifiers: fd.Modifiers,
			})
		}
	}

	for _, md := range td.Methods {
		ci.Methods = append(ci.Methods, extractMethod(md))
	}

	out := []models.ClassInfo{ci}
	for _, nested := range td.NestedTypes {
		out = append(out, extractType(nested)...)
	}
	return out
}

func extractMethod(md *javaparse.MethodDecl) models.MethodInfo {
	mi := models.MethodInfo{
		Name:      md.Name,
		Modifiers: md.Modifiers,
	}
	if md.IsVoid || md.ReturnType == nil {
		mi.ReturnType = "void"
	} else {
		mi.ReturnType = renderType(md.ReturnType)
	}
	for _, p := range md.Parameters {
		mi.Parameters = append(mi.Parameters, models.ParameterInfo{
			Name: p.Name,
			Type: renderType(p.Type),
		})
	}
	if md.HasBody {
		mi.BodyStatements = linearizeBody(md.Body)
	}
	return mi
}

func arrayDims(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "[]"
	}
	return s
}
