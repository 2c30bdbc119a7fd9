package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umlforge/javauml/javaparse"
	"github.com/umlforge/javauml/models"
)

func mustParse(t *testing.T, filename, src string) *javaparse.File {
	t.Helper()
	file, err := javaparse.Parse(filename, src)
	require.NoError(t, err)
	return file
}

func TestExtract_FieldsAndMethodsInSourceOrder(t *testing.T) {
	file := mustParse(t, "Account.java", `
public class Account {
    private String id;
    private double balance;

    public double getBalance() {
        return balance;
    }

    public void deposit(double amount) {
        balance = balance + amount;
    }
}
`)
	classes := Extract(file)
	require.Len(t, classes, 1)
	c := classes[0]
	assert.Equal(t, "Account", c.Name)
	assert.Equal(t, models.KindClass, c.Kind)

	require.Len(t, c.Fields, 2)
	assert.Equal(t, "id", c.Fields[0].Name)
	assert.Equal(t, "String", c.Fields[0].Type)
	assert.Equal(t, "balance", c.Fields[1].Name)
	assert.Equal(t, "double", c.Fields[1].Type)

	require.Len(t, c.Methods, 2)
	assert.Equal(t, "getBalance", c.Methods[0].Name)
	assert.Equal(t, "double", c.Methods[0].ReturnType)
	assert.Equal(t, "deposit", c.Methods[1].Name)
	assert.Equal(t, "void", c.Methods[1].ReturnType)
	require.Len(t, c.Methods[1].Parameters, 1)
	assert.Equal(t, "amount", c.Methods[1].Parameters[0].Name)
	assert.Equal(t, "double", c.Methods[1].Parameters[0].Type)
}

func TestExtract_NestedTypeFollowsOuter(t *testing.T) {
	file := mustParse(t, "Outer.java", `
public class Outer {
    class Inner {
    }
}
`)
	classes := Extract(file)
	require.Len(t, classes, 2)
	assert.Equal(t, "Outer", classes[0].Name)
	assert.Equal(t, "Inner", classes[1].Name)
}

func TestExtract_EnumConstantsPrecedeFieldsAndMethods(t *testing.T) {
	file := mustParse(t, "Direction.java", `
public enum Direction {
    NORTH, SOUTH, EAST, WEST;

    public String label() {
        return "dir";
    }
}
`)
	classes := Extract(file)
	require.Len(t, classes, 1)
	c := classes[0]
	assert.Equal(t, models.KindEnum, c.Kind)
	assert.Equal(t, []string{"NORTH", "SOUTH", "EAST", "WEST"}, c.EnumConstants)
	require.Len(t, c.Methods, 1)
	assert.Equal(t, "label", c.Methods[0].Name)
}

func TestExtract_ExtendsAndImplementsRendered(t *testing.T) {
	file := mustParse(t, "Dog.java", `
public class Dog extends Animal implements Comparable<Dog> {
}
`)
	classes := Extract(file)
	c := classes[0]
	assert.Equal(t, "Animal", c.Extends)
	require.Len(t, c.Implements, 1)
	assert.Equal(t, "Comparable<Dog>", c.Implements[0])
}

func TestExtract_AbstractMethodHasNoBodyStatements(t *testing.T) {
	file := mustParse(t, "Shape.java", `
public interface Shape {
    double area();
}
`)
	classes := Extract(file)
	assert.Empty(t, classes[0].Methods[0].BodyStatements)
}

func TestExtract_MethodBodyLinearisesControlFlow(t *testing.T) {
	file := mustParse(t, "Checker.java", `
public class Checker {
    public boolean check(int x) {
        if (x > 0) {
            return true;
        } else {
            return false;
        }
    }
}
`)
	classes := Extract(file)
	body := classes[0].Methods[0].BodyStatements
	assert.Equal(t, []string{
		"IF:x > 0",
		"RETURN:true",
		"ENDIF",
		"ELSE",
		"RETURN:false",
		"ENDELSE",
	}, body)
}

func TestExtract_ArrayFieldDeclaratorDimensions(t *testing.T) {
	file := mustParse(t, "Matrix.java", `
public class Matrix {
    private int[] row;
}
`)
	classes := Extract(file)
	require.Len(t, classes[0].Fields, 1)
	assert.Equal(t, "int[]", classes[0].Fields[0].Type)
}
