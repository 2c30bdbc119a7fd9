// Package filterexpr implements the optional class-filter expression
// described by SPEC_FULL.md §4.F: a gomplate (Go text/template syntax)
// template rendered per models.ClassInfo, whose "true"/"false" output
// narrows the class list handed to the generators. Grounded on the
// teacher's tests/fixtures/cel_evaluator.go, which renders a
// gomplate.Template against AST-shaped data and parses a boolean out of
// the result the same way.
package filterexpr

import (
	"fmt"
	"strings"

	"github.com/flanksource/gomplate/v3"

	"github.com/umlforge/javauml/models"
)

// Filter narrows classes to those for which expr evaluates true, with
// cls exposed as the template variable "class". An empty expr is a
// no-op: every class is retained (SPEC_FULL.md §4.F).
func Filter(expr string, classes []models.ClassInfo) ([]models.ClassInfo, error) {
	if strings.TrimSpace(expr) == "" {
		return classes, nil
	}

	out := make([]models.ClassInfo, 0, len(classes))
	for _, cls := range classes {
		keep, err := evaluate(expr, cls)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, cls)
		}
	}
	return out, nil
}

func evaluate(expr string, cls models.ClassInfo) (bool, error) {
	data := map[string]interface{}{
		"class": classAsMap(cls),
	}

	tmpl := gomplate.Template{Template: expr}
	result, err := gomplate.RunTemplate(data, tmpl)
	if err != nil {
		return false, fmt.Errorf("filter: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(result)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("filter: expression did not return a boolean: got %q", result)
	}
}

func classAsMap(cls models.ClassInfo) map[string]interface{} {
	methodNames := make([]string, 0, len(cls.Methods))
	for _, m := range cls.Methods {
		methodNames = append(methodNames, m.Name)
	}
	fieldNames := make([]string, 0, len(cls.Fields))
	for _, f := range cls.Fields {
		fieldNames = append(fieldNames, f.Name)
	}

	return map[string]interface{}{
		"name":          cls.Name,
		"kind":          string(cls.Kind),
		"modifiers":     cls.Modifiers,
		"extends":       cls.Extends,
		"implements":    cls.Implements,
		"fieldNames":    fieldNames,
		"methodNames":   methodNames,
		"enumConstants": cls.EnumConstants,
	}
}
