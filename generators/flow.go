package generators

import (
	"fmt"
	"strings"

	"github.com/umlforge/javauml/models"
)

// FlowDiagram is the activity-diagram strategy (spec.md §4.C.3): a
// single-pass, cursor-based renderer over the tagged body linearisation
// produced by package extract.
type FlowDiagram struct{}

func (FlowDiagram) DiagramType() string { return "flow" }

func (FlowDiagram) Directives() []string { return nil }

func (g FlowDiagram) Body(classes []models.ClassInfo) []string {
	var lines []string
	for _, cls := range classes {
		interesting := make([]models.MethodInfo, 0, len(cls.Methods))
		for _, m := range cls.Methods {
			if len(m.BodyStatements) > 1 {
				interesting = append(interesting, m)
			}
		}
		if len(interesting) == 0 {
			n := len(cls.Methods)
			if n > 3 {
				n = 3
			}
			interesting = cls.Methods[:n]
		}

		for _, m := range interesting {
			lines = append(lines, g.renderMethod(cls.Name, m)...)
			lines = append(lines, "")
		}
	}
	return lines
}

func (g FlowDiagram) renderMethod(className string, m models.MethodInfo) []string {
	params := make([]string, 0, len(m.Parameters))
	for _, p := range m.Parameters {
		params = append(params, fmt.Sprintf("%s %s", p.Type, p.Name))
	}
	lines := []string{
		fmt.Sprintf("partition %q {", fmt.Sprintf("%s.%s(%s)", className, m.Name, strings.Join(params, ", "))),
		"  start",
	}

	if len(m.BodyStatements) == 0 {
		lines = append(lines, "  :No body;")
	} else {
		lines = append(lines, g.renderStatements(m.BodyStatements)...)
	}

	lines = append(lines, "  stop", "}")
	return lines
}

// renderStatements walks the tagged sequence with an explicit cursor,
// recognising the balanced composite tags and delegating every leaf to
// renderSingle. Stray end-markers or orphan ELSE/CATCH/CASE tags outside
// their composite context are silently ignored by renderSingle.
func (g FlowDiagram) renderStatements(stmts []string) []string {
	var lines []string
	i := 0
	for i < len(stmts) {
		stmt := stmts[i]

		switch {
		case strings.HasPrefix(stmt, "IF:"):
			cond := stmt[len("IF:"):]
			lines = append(lines, fmt.Sprintf("  if (%s) then (yes)", cond))
			i++
			for i < len(stmts) && stmts[i] != "ENDIF" {
				if stmts[i] == "ELSE" {
					lines = append(lines, "  else (no)")
					i++
					for i < len(stmts) && stmts[i] != "ENDELSE" {
						lines = append(lines, g.renderSingle(stmts[i])...)
						i++
					}
					i++ // skip ENDELSE
					continue
				}
				lines = append(lines, g.renderSingle(stmts[i])...)
				i++
			}
			if i < len(stmts) {
				i++ // skip ENDIF
			}
			// The extractor emits the else branch right after ENDIF.
			if i < len(stmts) && stmts[i] == "ELSE" {
				lines = append(lines, "  else (no)")
				i++
				for i < len(stmts) && stmts[i] != "ENDELSE" {
					lines = append(lines, g.renderSingle(stmts[i])...)
					i++
				}
				if i < len(stmts) {
					i++ // skip ENDELSE
				}
			}
			lines = append(lines, "  endif")

		case strings.HasPrefix(stmt, "FOR:") || strings.HasPrefix(stmt, "WHILE:"):
			var tag string
			if strings.HasPrefix(stmt, "FOR:") {
				tag, stmt = "FOR", stmt[len("FOR:"):]
			} else {
				tag, stmt = "WHILE", stmt[len("WHILE:"):]
			}
			endTag := "END" + tag
			lines = append(lines, fmt.Sprintf("  while (%s) is (true)", stmt))
			i++
			for i < len(stmts) && stmts[i] != endTag {
				lines = append(lines, g.renderSingle(stmts[i])...)
				i++
			}
			if i < len(stmts) {
				i++
			}
			lines = append(lines, "  endwhile (false)")

		case stmt == "TRY":
			lines = append(lines, "  group Try")
			i++
			for i < len(stmts) && stmts[i] != "ENDTRY" {
				lines = append(lines, g.renderSingle(stmts[i])...)
				i++
			}
			if i < len(stmts) {
				i++ // skip ENDTRY
			}
			lines = append(lines, "  end group")
			for i < len(stmts) && strings.HasPrefix(stmts[i], "CATCH:") {
				exc := stmts[i][len("CATCH:"):]
				lines = append(lines, fmt.Sprintf("  group Catch (%s)", exc))
				i++
				for i < len(stmts) && stmts[i] != "ENDCATCH" {
					lines = append(lines, g.renderSingle(stmts[i])...)
					i++
				}
				if i < len(stmts) {
					i++
				}
				lines = append(lines, "  end group")
			}

		case strings.HasPrefix(stmt, "SWITCH:"):
			expr := stmt[len("SWITCH:"):]
			lines = append(lines, fmt.Sprintf("  switch (%s)", expr))
			i++
			for i < len(stmts) && stmts[i] != "ENDSWITCH" {
				if strings.HasPrefix(stmts[i], "CASE:") {
					label := stmts[i][len("CASE:"):]
					lines = append(lines, fmt.Sprintf("  case ( %s )", label))
					i++
					for i < len(stmts) && !strings.HasPrefix(stmts[i], "CASE:") && stmts[i] != "ENDSWITCH" {
						lines = append(lines, g.renderSingle(stmts[i])...)
						i++
					}
				} else {
					i++
				}
			}
			if i < len(stmts) {
				i++
			}
			lines = append(lines, "  endswitch")

		default:
			lines = append(lines, g.renderSingle(stmt)...)
			i++
		}
	}

	return lines
}

func (g FlowDiagram) renderSingle(stmt string) []string {
	switch {
	case strings.HasPrefix(stmt, "IF:"), strings.HasPrefix(stmt, "FOR:"), strings.HasPrefix(stmt, "WHILE:"),
		stmt == "TRY", strings.HasPrefix(stmt, "SWITCH:"):
		return g.renderStatements([]string{stmt})
	case strings.HasPrefix(stmt, "CALL:"):
		return []string{fmt.Sprintf("  :%s;", stmt[len("CALL:"):])}
	case strings.HasPrefix(stmt, "VAR:"):
		return []string{fmt.Sprintf("  :Declare %s;", stmt[len("VAR:"):])}
	case strings.HasPrefix(stmt, "RETURN:"):
		if val := stmt[len("RETURN:"):]; val != "" {
			return []string{fmt.Sprintf("  :Return %s;", val)}
		}
		return []string{"  :Return;"}
	case strings.HasPrefix(stmt, "THROW:"):
		return []string{fmt.Sprintf("  #pink:Throw %s;", stmt[len("THROW:"):])}
	case stmt == "ENDIF", stmt == "ENDELSE", stmt == "ENDFOR", stmt == "ENDWHILE",
		stmt == "ENDTRY", stmt == "ENDCATCH", stmt == "ENDSWITCH":
		return nil
	case stmt == "ELSE", strings.HasPrefix(stmt, "CATCH:"), strings.HasPrefix(stmt, "CASE:"):
		return nil
	default:
		return []string{fmt.Sprintf("  :%s;", stmt)}
	}
}
