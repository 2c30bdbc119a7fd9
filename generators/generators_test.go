package generators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umlforge/javauml/models"
)

func TestGenerate_WrapsBodyInTemplate(t *testing.T) {
	out := Generate(ClassDiagram{}, nil)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "@startuml", lines[0])
	assert.Equal(t, "skinparam classAttributeIconSize 0", lines[1])
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "@enduml", lines[len(lines)-1])
}

func TestClassDiagram_RendersFieldsAndMethodsWithVisibility(t *testing.T) {
	classes := []models.ClassInfo{
		{
			Name: "Account",
			Kind: models.KindClass,
			Fields: []models.FieldInfo{
				{Name: "id", Type: "String", Modifiers: []string{"private"}},
			},
			Methods: []models.MethodInfo{
				{Name: "getId", ReturnType: "String", Modifiers: []string{"public"}},
			},
		},
	}
	out := Generate(ClassDiagram{}, classes)
	assert.Contains(t, out, "class Account {")
	assert.Contains(t, out, "  -id : String")
	assert.Contains(t, out, "  --")
	assert.Contains(t, out, "  +getId() : String")
}

func TestClassDiagram_EnumAndInterfaceHeaders(t *testing.T) {
	classes := []models.ClassInfo{
		{Name: "Shape", Kind: models.KindInterface},
		{Name: "Color", Kind: models.KindEnum, EnumConstants: []string{"RED", "BLUE"}},
	}
	out := Generate(ClassDiagram{}, classes)
	assert.Contains(t, out, "interface Shape {")
	assert.Contains(t, out, "enum Color {")
	assert.Contains(t, out, "  RED")
	assert.Contains(t, out, "  BLUE")
}

func TestClassDiagram_RelationshipsOnlyAmongKnownClasses(t *testing.T) {
	classes := []models.ClassInfo{
		{Name: "Animal", Kind: models.KindClass},
		{Name: "Dog", Kind: models.KindClass, Extends: "Animal"},
		{Name: "Cat", Kind: models.KindClass, Extends: "Unknown"},
	}
	out := Generate(ClassDiagram{}, classes)
	assert.Contains(t, out, "Animal <|-- Dog")
	assert.NotContains(t, out, "Unknown <|-- Cat")
}

func TestUseCaseDiagram_ActorsAndSystemBySuffix(t *testing.T) {
	classes := []models.ClassInfo{
		{Name: "Customer", Kind: models.KindClass},
		{
			Name: "AccountService",
			Kind: models.KindClass,
			Methods: []models.MethodInfo{
				{Name: "openAccount", Modifiers: []string{"public"}},
			},
		},
	}
	out := Generate(UseCaseDiagram{}, classes)
	assert.Contains(t, out, `actor "Customer" as Customer`)
	assert.Contains(t, out, `rectangle "AccountService" {`)
	assert.Contains(t, out, `usecase "Open Account" as AccountService_openAccount`)
}

func TestUseCaseDiagram_FallbackSystemIsDeterministicByInputOrder(t *testing.T) {
	// No class matches a system suffix, and all classes tie at zero
	// public methods, so the fallback seed (classes[0]) must win.
	classes := []models.ClassInfo{
		{Name: "Alpha", Kind: models.KindClass},
		{Name: "Beta", Kind: models.KindClass},
	}
	systems, actors := UseCaseDiagram{}.classify(classes)
	require.Len(t, systems, 1)
	assert.Equal(t, "Alpha", systems[0].Name)
	require.Len(t, actors, 1)
	assert.Equal(t, "Beta", actors[0].Name)
}

func TestUseCaseDiagram_PackagePrivateMethodCountsAsPublic(t *testing.T) {
	cls := models.ClassInfo{
		Name: "Widget",
		Methods: []models.MethodInfo{
			{Name: "render"},                           // no modifiers: package-private
			{Name: "secret", Modifiers: []string{"private"}},
		},
	}
	assert.Equal(t, 1, countPublicMethods(cls))
}

func TestHumanize_CapitalisesOnlyFirstCharacter(t *testing.T) {
	assert.Equal(t, "Open Account", humanize("openAccount"))
	assert.Equal(t, "Get X M L Parser", humanize("getXMLParser"))
}

func TestFlowDiagram_RendersIfElseAndLeafStatements(t *testing.T) {
	classes := []models.ClassInfo{
		{
			Name: "Checker",
			Methods: []models.MethodInfo{
				{
					Name: "check",
					BodyStatements: []string{
						"IF:x > 0",
						"RETURN:true",
						"ENDIF",
						"ELSE",
						"RETURN:false",
						"ENDELSE",
					},
				},
			},
		},
	}
	out := Generate(FlowDiagram{}, classes)
	assert.Contains(t, out, `partition "Checker.check()" {`)
	assert.Contains(t, out, "  if (x > 0) then (yes)")
	assert.Contains(t, out, "  :Return true;")
	assert.Contains(t, out, "  else (no)")
	assert.Contains(t, out, "  :Return false;")
	assert.Contains(t, out, "  endif")
}

func TestFlowDiagram_FallsBackToFirstThreeMethodsWhenNoneInteresting(t *testing.T) {
	classes := []models.ClassInfo{
		{
			Name: "Simple",
			Methods: []models.MethodInfo{
				{Name: "a", BodyStatements: []string{"RETURN:"}},
				{Name: "b", BodyStatements: []string{"RETURN:"}},
				{Name: "c", BodyStatements: []string{"RETURN:"}},
				{Name: "d", BodyStatements: []string{"RETURN:"}},
			},
		},
	}
	out := Generate(FlowDiagram{}, classes)
	assert.Contains(t, out, `partition "Simple.a()" {`)
	assert.Contains(t, out, `partition "Simple.c()" {`)
	assert.NotContains(t, out, `partition "Simple.d()" {`)
}

func TestFlowDiagram_EmptyBodyRendersNoBody(t *testing.T) {
	classes := []models.ClassInfo{
		{Name: "Shape", Methods: []models.MethodInfo{{Name: "area"}}},
	}
	out := Generate(FlowDiagram{}, classes)
	assert.Contains(t, out, "  :No body;")
}

func TestRegistry_DefaultOrderAndCreateAll(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"class", "usecase", "flow"}, r.Available())

	all := r.CreateAll()
	require.Len(t, all, 3)
	assert.Equal(t, "class", all[0].Name)
	assert.Equal(t, "usecase", all[1].Name)
	assert.Equal(t, "flow", all[2].Name)
}

func TestRegistry_UnknownNameReturnsTypedError(t *testing.T) {
	r := DefaultRegistry()
	_, err := r.Create("bogus")
	require.Error(t, err)

	var unknown *UnknownGeneratorError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "bogus", unknown.Name)
	assert.ElementsMatch(t, []string{"class", "usecase", "flow"}, unknown.Available)
}

func TestRegistry_ReRegisterKeepsPosition(t *testing.T) {
	r := NewRegistry()
	r.Register("a", func() Generator { return ClassDiagram{} })
	r.Register("b", func() Generator { return FlowDiagram{} })
	r.Register("a", func() Generator { return UseCaseDiagram{} })

	assert.Equal(t, []string{"a", "b"}, r.Available())
	g, err := r.Create("a")
	require.NoError(t, err)
	assert.Equal(t, "usecase", g.DiagramType())
}
