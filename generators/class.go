package generators

import (
	"fmt"
	"strings"

	"github.com/umlforge/javauml/models"
)

// visibilityGlyphs maps a Java access modifier to its PlantUML visibility
// glyph; a modifier set with none of these present renders "~" (package).
var visibilityGlyphs = map[string]string{
	"public":    "+",
	"private":   "-",
	"protected": "#",
}

// ClassDiagram is the class-diagram strategy (spec.md §4.C.1).
type ClassDiagram struct{}

func (ClassDiagram) DiagramType() string { return "class" }

func (ClassDiagram) Directives() []string {
	return []string{"skinparam classAttributeIconSize 0"}
}

func (g ClassDiagram) Body(classes []models.ClassInfo) []string {
	var lines []string
	for _, cls := range classes {
		lines = append(lines, g.renderClass(cls)...)
		lines = append(lines, "")
	}
	lines = append(lines, g.renderRelationships(classes)...)
	return lines
}

func (g ClassDiagram) renderClass(cls models.ClassInfo) []string {
	var lines []string

	switch {
	case cls.Kind == models.KindInterface:
		lines = append(lines, fmt.Sprintf("interface %s {", cls.Name))
	case cls.Kind == models.KindEnum:
		lines = append(lines, fmt.Sprintf("enum %s {", cls.Name))
		for _, c := range cls.EnumConstants {
			lines = append(lines, "  "+c)
		}
		if len(cls.EnumConstants) > 0 && (len(cls.Fields) > 0 || len(cls.Methods) > 0) {
			lines = append(lines, "  --")
		}
	case cls.HasModifier("abstract"):
		lines = append(lines, fmt.Sprintf("abstract class %s {", cls.Name))
	default:
		lines = append(lines, fmt.Sprintf("class %s {", cls.Name))
	}

	for _, f := range cls.Fields {
		vis := g.visibility(f.Modifiers)
		static := ""
		if f.HasModifier("static") {
			static = " {static}"
		}
		lines = append(lines, fmt.Sprintf("  %s%s : %s%s", vis, f.Name, f.Type, static))
	}

	if len(cls.Fields) > 0 && len(cls.Methods) > 0 {
		lines = append(lines, "  --")
	}

	for _, m := range cls.Methods {
		vis := g.visibility(m.Modifiers)
		static := ""
		if m.HasModifier("static") {
			static = " {static}"
		}
		abstract := ""
		if m.HasModifier("abstract") {
			abstract = " {abstract}"
		}
		params := make([]string, 0, len(m.Parameters))
		for _, p := range m.Parameters {
			params = append(params, fmt.Sprintf("%s: %s", p.Name, p.Type))
		}
		lines = append(lines, fmt.Sprintf("  %s%s(%s) : %s%s%s",
			vis, m.Name, strings.Join(params, ", "), m.ReturnType, static, abstract))
	}

	lines = append(lines, "}")
	return lines
}

func (ClassDiagram) visibility(modifiers []string) string {
	for _, mod := range modifiers {
		if g, ok := visibilityGlyphs[mod]; ok {
			return g
		}
	}
	return "~"
}

func (ClassDiagram) renderRelationships(classes []models.ClassInfo) []string {
	var lines []string
	names := make(map[string]bool, len(classes))
	for _, cls := range classes {
		names[cls.Name] = true
	}

	for _, cls := range classes {
		if cls.Extends != "" && names[cls.Extends] {
			lines = append(lines, fmt.Sprintf("%s <|-- %s", cls.Extends, cls.Name))
		}
		for _, iface := range cls.Implements {
			if names[iface] {
				lines = append(lines, fmt.Sprintf("%s <|.. %s", iface, cls.Name))
			}
		}
		for _, f := range cls.Fields {
			base := strings.SplitN(f.Type, "<", 2)[0]
			if names[base] && base != cls.Name {
				lines = append(lines, fmt.Sprintf("%s --> %s : %s", cls.Name, base, f.Name))
			}
		}
	}
	return lines
}
