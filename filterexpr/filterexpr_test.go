package filterexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umlforge/javauml/models"
)

func TestFilter_EmptyExpressionIsPassThrough(t *testing.T) {
	classes := []models.ClassInfo{{Name: "A"}, {Name: "B"}}
	out, err := Filter("", classes)
	require.NoError(t, err)
	assert.Equal(t, classes, out)

	out, err = Filter("   ", classes)
	require.NoError(t, err)
	assert.Equal(t, classes, out)
}

func TestFilter_NarrowsByClassName(t *testing.T) {
	classes := []models.ClassInfo{
		{Name: "AccountService"},
		{Name: "Customer"},
	}
	out, err := Filter(`{{ eq .class.name "AccountService" }}`, classes)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "AccountService", out[0].Name)
}

func TestFilter_NarrowsByKind(t *testing.T) {
	classes := []models.ClassInfo{
		{Name: "Shape", Kind: models.KindInterface},
		{Name: "Color", Kind: models.KindEnum},
		{Name: "Dog", Kind: models.KindClass},
	}
	out, err := Filter(`{{ eq .class.kind "class" }}`, classes)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Dog", out[0].Name)
}

func TestFilter_NonBooleanResultIsAnError(t *testing.T) {
	classes := []models.ClassInfo{{Name: "A"}}
	_, err := Filter(`{{ .class.name }}`, classes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not return a boolean")
}

func TestFilter_EmptyClassListNeverEvaluatesExpression(t *testing.T) {
	out, err := Filter(`{{ eq .class.name "Anything" }}`, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
