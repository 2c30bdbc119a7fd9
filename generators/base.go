// Package generators implements the three PlantUML diagram strategies
// (spec.md §4.C) and the name-keyed registry that enumerates them
// (spec.md §4.D). Every generator is pure and deterministic: the same
// []models.ClassInfo always renders to the same string.
package generators

import (
	"strings"

	"github.com/umlforge/javauml/models"
)

// Generator is the template-method contract every diagram strategy
// implements. Generate is the shared skeleton; Directives and Body are
// the customisable steps, and DiagramType is the registry key.
type Generator interface {
	DiagramType() string
	Directives() []string
	Body(classes []models.ClassInfo) []string
}

// Generate renders the common "@startuml / directives / blank / body /
// @enduml" template shared by every generator (spec.md §4.C).
func Generate(g Generator, classes []models.ClassInfo) string {
	lines := []string{"@startuml"}
	lines = append(lines, g.Directives()...)
	lines = append(lines, "")
	lines = append(lines, g.Body(classes)...)
	lines = append(lines, "@enduml")
	return strings.Join(lines, "\n")
}
