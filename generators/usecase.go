package generators

import (
	"fmt"
	"strings"

	"github.com/umlforge/javauml/models"
)

// systemSuffixes names the class-name suffixes that mark a class as a
// system rather than an actor (spec.md §4.C.2).
var systemSuffixes = []string{"Service", "Controller", "Handler", "Manager", "Facade"}

// UseCaseDiagram is the use-case-diagram strategy (spec.md §4.C.2).
type UseCaseDiagram struct{}

func (UseCaseDiagram) DiagramType() string { return "usecase" }

func (UseCaseDiagram) Directives() []string {
	return []string{"left to right direction"}
}

func (g UseCaseDiagram) Body(classes []models.ClassInfo) []string {
	systems, actors := g.classify(classes)
	var lines []string

	actorOrder := make([]string, 0, len(actors))
	actorNames := make(map[string]bool, len(actors))
	for _, cls := range actors {
		lines = append(lines, fmt.Sprintf("actor %q as %s", cls.Name, cls.Name))
		actorOrder = append(actorOrder, cls.Name)
		actorNames[cls.Name] = true
	}

	lines = append(lines, "")

	for _, sys := range systems {
		lines = append(lines, fmt.Sprintf("rectangle %q {", sys.Name))
		for _, m := range sys.Methods {
			if m.IsPublicOrUnmodified() {
				ucID := fmt.Sprintf("%s_%s", sys.Name, m.Name)
				lines = append(lines, fmt.Sprintf("  usecase %q as %s", humanize(m.Name), ucID))
			}
		}
		lines = append(lines, "}")
		lines = append(lines, "")
	}

	var firstActor string
	if len(actorOrder) > 0 {
		firstActor = actorOrder[0]
	}

	for _, sys := range systems {
		for _, m := range sys.Methods {
			if !m.IsPublicOrUnmodified() {
				continue
			}
			ucID := fmt.Sprintf("%s_%s", sys.Name, m.Name)
			linked := false
			for _, p := range m.Parameters {
				base := strings.SplitN(p.Type, "<", 2)[0]
				if actorNames[base] {
					lines = append(lines, fmt.Sprintf("%s --> %s", base, ucID))
					linked = true
				}
			}
			if !linked && firstActor != "" {
				lines = append(lines, fmt.Sprintf("%s --> %s", firstActor, ucID))
			}
		}
	}

	return lines
}

func (UseCaseDiagram) classify(classes []models.ClassInfo) (systems, actors []models.ClassInfo) {
	for _, cls := range classes {
		isSystem := false
		for _, suffix := range systemSuffixes {
			if strings.HasSuffix(cls.Name, suffix) {
				isSystem = true
				break
			}
		}
		if isSystem {
			systems = append(systems, cls)
		} else {
			actors = append(actors, cls)
		}
	}

	if len(systems) == 0 && len(classes) > 0 {
		best := classes[0]
		bestCount := countPublicMethods(best)
		for _, cls := range classes[1:] {
			if c := countPublicMethods(cls); c > bestCount {
				best, bestCount = cls, c
			}
		}
		systems = []models.ClassInfo{best}
		actors = actors[:0]
		for _, cls := range classes {
			if cls.Name != best.Name {
				actors = append(actors, cls)
			}
		}
	}

	return systems, actors
}

func countPublicMethods(cls models.ClassInfo) int {
	n := 0
	for _, m := range cls.Methods {
		if m.IsPublicOrUnmodified() {
			n++
		}
	}
	return n
}

// humanize converts a camelCase identifier into a human-readable label:
// a space before every uppercase letter after position 0, then the
// whole result's first character capitalised (spec.md §4.C.2).
func humanize(name string) string {
	var b strings.Builder
	for i, ch := range name {
		if i > 0 && ch >= 'A' && ch <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(ch)
	}
	result := b.String()
	if result == "" {
		return result
	}
	return strings.ToUpper(result[:1]) + result[1:]
}
