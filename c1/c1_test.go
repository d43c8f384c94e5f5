package c1_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/c1t/c1"
	"github.com/dhamidi/c1t/c1/parser"
)

func TestCheckAccepts(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"// just a comment",
		"/* spanning\ntwo lines */",
		"void foo() {}",
		"int bar() {return 0;}",
		"void main() {\n\tx = 1;\n\tif (x == 1) {\n\t\tprintf(x);\n\t}\n\tfoo();\n}",
		"bool flag() {return true || false;}",
		"float calc() {return -1.5 * (a + b) / c && d;}",
	}

	for _, input := range inputs {
		assert.NoError(t, c1.Check(input), "input: %q", input)
	}
}

func TestCheckRejects(t *testing.T) {
	inputs := []string{
		"int x = 0;",
		"void foo()) {}",
		"void foo() {",
		"void foo() {}}",
		"const bar() {return 0;}",
		"void foo() { return 0 }",
		"void foo() { x ( ; }",
	}

	for _, input := range inputs {
		assert.Error(t, c1.Check(input), "input: %q", input)
	}
}

func TestCheckReportsSyntaxError(t *testing.T) {
	err := c1.Check("int x = 0;")
	require.Error(t, err)

	var syntaxErr *parser.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 1, syntaxErr.Line)
	assert.Equal(t, "Expected '(' at line 1, got '=' instead.", err.Error())
}

// Verdicts carry no hidden state: checking the same text twice yields the
// same result and the same message.
func TestCheckIsIdempotent(t *testing.T) {
	input := "void foo() {\nreturn\n}"

	first := c1.Check(input)
	second := c1.Check(input)

	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())

	valid := "void foo() {}"
	assert.NoError(t, c1.Check(valid))
	assert.NoError(t, c1.Check(valid))
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "ok.c1")
	require.NoError(t, os.WriteFile(path, []byte("void foo() {}"), 0o644))
	assert.NoError(t, c1.CheckFile(path))

	bad := filepath.Join(dir, "bad.c1")
	require.NoError(t, os.WriteFile(bad, []byte("void foo() {"), 0o644))
	assert.Error(t, c1.CheckFile(bad))

	err := c1.CheckFile(filepath.Join(dir, "missing.c1"))
	require.Error(t, err)
	var syntaxErr *parser.SyntaxError
	assert.False(t, errors.As(err, &syntaxErr), "read failures are not syntax errors")
}
