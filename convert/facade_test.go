package convert

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umlforge/javauml/models"
)

func src(filename, code string) models.SourcePair {
	return models.SourcePair{Filename: filename, Code: code}
}

// 1. Determinism: identical input yields byte-identical diagrams.
func TestConvert_Determinism(t *testing.T) {
	sources := []models.SourcePair{
		src("A.java", "public class A { private int x; public void f(){} }"),
	}
	f1 := NewFacade()
	f2 := NewFacade()
	r1 := f1.Convert(context.Background(), sources)
	r2 := f2.Convert(context.Background(), sources)
	assert.Equal(t, r1.Diagrams, r2.Diagrams)
}

// 2. Cache idempotence: a second identical call is served from cache.
func TestConvert_CacheIdempotence(t *testing.T) {
	sources := []models.SourcePair{src("A.java", "public class A {}")}
	f := NewFacade()

	r1 := f.Convert(context.Background(), sources)
	fp := Fingerprint(sources)
	assert.True(t, f.cache.Has(fp))

	r2 := f.Convert(context.Background(), sources)
	assert.Equal(t, r1, r2)
}

// 3. Order-independent fingerprint: pairs sorted before hashing.
func TestFingerprint_OrderIndependent(t *testing.T) {
	a := src("A.java", "a")
	b := src("B.java", "b")
	assert.Equal(t, Fingerprint([]models.SourcePair{a, b}), Fingerprint([]models.SourcePair{b, a}))
}

// 4. LRU bound: after 129 distinct calls, exactly 128 remain, and
// accessing an entry protects it from the next eviction.
func TestConvert_LRUBound(t *testing.T) {
	f := NewFacade()

	firstSources := []models.SourcePair{src("F0.java", "public class F0 {}")}
	firstFP := Fingerprint(firstSources)
	f.Convert(context.Background(), firstSources)

	for i := 1; i < 128; i++ {
		s := []models.SourcePair{src(fmt.Sprintf("F%d.java", i), fmt.Sprintf("public class F%d {}", i))}
		f.Convert(context.Background(), s)
	}
	assert.Equal(t, 128, f.cache.Len())
	assert.True(t, f.cache.Has(firstFP))

	// Touch firstFP to protect it, then insert a 129th distinct input:
	// the second-oldest entry should be evicted instead.
	f.Convert(context.Background(), firstSources)
	secondFP := Fingerprint([]models.SourcePair{src("F1.java", "public class F1 {}")})

	lastSources := []models.SourcePair{src("F128.java", "public class F128 {}")}
	f.Convert(context.Background(), lastSources)

	assert.Equal(t, 128, f.cache.Len())
	assert.True(t, f.cache.Has(firstFP))
	assert.False(t, f.cache.Has(secondFP))
}

// 5. Partial-failure containment.
func TestConvert_PartialFailureContainment(t *testing.T) {
	sources := []models.SourcePair{
		src("ok.java", "public class Ok { private int x; }"),
		src("bad.java", "this is not java {"),
	}
	f := NewFacade()
	result := f.Convert(context.Background(), sources)

	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "bad.java:")
	assert.Contains(t, result.Diagrams["class"], "class Ok {")
	assert.NotContains(t, result.Diagrams["class"], "Bad")
}

// 6. Empty aggregate -> empty diagram strings, but keys present.
func TestConvert_EmptyAggregateYieldsEmptyDiagrams(t *testing.T) {
	sources := []models.SourcePair{src("bad.java", "!!! not java !!!")}
	f := NewFacade()
	result := f.Convert(context.Background(), sources)

	require.Contains(t, result.Diagrams, "class")
	require.Contains(t, result.Diagrams, "usecase")
	require.Contains(t, result.Diagrams, "flow")
	assert.Empty(t, result.Diagrams["class"])
	assert.Empty(t, result.Diagrams["usecase"])
	assert.Empty(t, result.Diagrams["flow"])
}

// End-to-end scenario 1: single class.
func TestConvert_Scenario_SingleClass(t *testing.T) {
	sources := []models.SourcePair{
		src("A.java", "public class A { private int x; public void f(){} }"),
	}
	f := NewFacade()
	result := f.Convert(context.Background(), sources)
	out := result.Diagrams["class"]

	assert.Contains(t, out, "class A {")
	assert.Contains(t, out, "-x : int")
	assert.Contains(t, out, "--")
	assert.Contains(t, out, "+f() : void")
	assert.Contains(t, out, "}")
	assert.NotContains(t, out, "<|--")
	assert.NotContains(t, out, "<|..")
}

// End-to-end scenario 2: inheritance + interface.
func TestConvert_Scenario_InheritanceAndInterface(t *testing.T) {
	sources := []models.SourcePair{
		src("Base.java", "public class Base{}"),
		src("Iface.java", "public interface Iface{}"),
		src("Sub.java", "public class Sub extends Base implements Iface{}"),
	}
	f := NewFacade()
	result := f.Convert(context.Background(), sources)
	out := result.Diagrams["class"]

	assert.Contains(t, out, "Base <|-- Sub")
	assert.Contains(t, out, "Iface <|.. Sub")
}

// End-to-end scenario 3: service detection in the use-case diagram.
func TestConvert_Scenario_ServiceDetection(t *testing.T) {
	sources := []models.SourcePair{
		src("UserService.java", "public class UserService { public User get(String id){return null;} }"),
		src("User.java", "public class User {}"),
	}
	f := NewFacade()
	result := f.Convert(context.Background(), sources)
	out := result.Diagrams["usecase"]

	assert.Contains(t, out, `actor "User" as User`)
	assert.Contains(t, out, `rectangle "UserService" {`)
	assert.Contains(t, out, `usecase "Get" as UserService_get`)
	assert.Contains(t, out, "User --> UserService_get")
}

// End-to-end scenario 4: flow if/else.
func TestConvert_Scenario_FlowIfElse(t *testing.T) {
	sources := []models.SourcePair{
		src("F.java", "public class F { void f(int x){ if(x>0){return;} else { x=0; } } }"),
	}
	f := NewFacade()
	result := f.Convert(context.Background(), sources)
	out := result.Diagrams["flow"]

	assert.Contains(t, out, "if (x > 0) then (yes)")
	assert.Contains(t, out, ":Return;")
	assert.Contains(t, out, "else (no)")
	assert.Contains(t, out, ":x = 0;")
	assert.Contains(t, out, "endif")
}

// End-to-end scenario 5: mixed parse failure.
func TestConvert_Scenario_MixedParseFailure(t *testing.T) {
	sources := []models.SourcePair{
		src("good.java", "public class Good { private int x; }"),
		src("bad.java", "this is not java"),
	}
	f := NewFacade()
	result := f.Convert(context.Background(), sources)

	require.Len(t, result.Errors, 1)
	assert.True(t, len(result.Errors[0]) > len("bad.java:") && result.Errors[0][:len("bad.java:")] == "bad.java:")
	assert.Contains(t, result.Diagrams["class"], "class Good {")
}

// End-to-end scenario 6: eviction order under touch.
func TestConvert_Scenario_Eviction(t *testing.T) {
	f := NewFacade()
	const maxCache = 128

	fps := make([]string, maxCache)
	for i := 0; i < maxCache; i++ {
		s := []models.SourcePair{src(fmt.Sprintf("E%d.java", i), fmt.Sprintf("public class E%d {}", i))}
		fps[i] = Fingerprint(s)
		f.Convert(context.Background(), s)
	}

	// Touch entry #1 (the first, oldest entry) so it is protected from the
	// next eviction; entry #2 (the next-oldest) becomes the new LRU victim.
	f.Convert(context.Background(), []models.SourcePair{src("E0.java", "public class E0 {}")})

	s129 := []models.SourcePair{src("E128.java", "public class E128 {}")}
	f.Convert(context.Background(), s129)

	assert.Equal(t, maxCache, f.cache.Len())
	assert.True(t, f.cache.Has(fps[0]), "touched entry #1 should survive")
	assert.False(t, f.cache.Has(fps[1]), "entry #2 should be the one evicted")
}

func TestWithFilterExpr_NarrowsGeneratedClasses(t *testing.T) {
	sources := []models.SourcePair{
		src("A.java", "public class A {}"),
		src("B.java", "public class B {}"),
	}
	f := NewFacade(WithFilterExpr(`{{ eq .class.name "A" }}`))
	result := f.Convert(context.Background(), sources)

	assert.Contains(t, result.Diagrams["class"], "class A {")
	assert.NotContains(t, result.Diagrams["class"], "class B {")
}

func TestWithCacheCapacity_BoundsLRU(t *testing.T) {
	f := NewFacade(WithCacheCapacity(2))
	for i := 0; i < 3; i++ {
		s := []models.SourcePair{src(fmt.Sprintf("C%d.java", i), fmt.Sprintf("public class C%d {}", i))}
		f.Convert(context.Background(), s)
	}
	assert.Equal(t, 2, f.cache.Len())
}
