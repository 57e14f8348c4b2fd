package ast_test

import (
	"fmt"
	"testing"

	"monkey/internal/frontend/ast"
	"monkey/internal/frontend/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, errs := parser.Parse(src)
	require.Empty(t, errs)
	return program
}

func TestInspectVisitsInSourceOrder(t *testing.T) {
	program := parse(t, "let f = fn(a) { if (a < 1) { -a } else { g(a, 2) } };")

	var visited []string
	ast.Inspect(program, func(n ast.Node) bool {
		visited = append(visited, fmt.Sprintf("%T", n))
		return true
	})

	assert.Equal(t, []string{
		"*ast.Program",
		"*ast.LetStatement",
		"*ast.Identifier", // f
		"*ast.FunctionLiteral",
		"*ast.Identifier", // a
		"*ast.BlockStatement",
		"*ast.ExpressionStatement",
		"*ast.IfExpression",
		"*ast.InfixExpression",
		"*ast.Identifier",
		"*ast.IntegerLiteral",
		"*ast.BlockStatement",
		"*ast.ExpressionStatement",
		"*ast.PrefixExpression",
		"*ast.Identifier",
		"*ast.BlockStatement",
		"*ast.ExpressionStatement",
		"*ast.CallExpression",
		"*ast.Identifier",
		"*ast.Identifier",
		"*ast.IntegerLiteral",
	}, visited)
}

func TestInspectCanSkipChildren(t *testing.T) {
	program := parse(t, "fn(x) { x + 1 }; y")

	var idents []string
	ast.Inspect(program, func(n ast.Node) bool {
		if _, ok := n.(*ast.FunctionLiteral); ok {
			return false
		}
		if id, ok := n.(*ast.Identifier); ok {
			idents = append(idents, id.Value)
		}
		return true
	})

	assert.Equal(t, []string{"y"}, idents)
}

func TestDumpYAML(t *testing.T) {
	program := parse(t, "let add = fn(a, b) { a + b };\nadd(1, !true)")

	out, err := yaml.Marshal(ast.Dump(program))
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, "Program", back["kind"])

	stmts, ok := back["statements"].([]any)
	require.True(t, ok)
	require.Len(t, stmts, 2)

	let := stmts[0].(map[string]any)
	assert.Equal(t, "LetStatement", let["kind"])
	assert.Equal(t, "add", let["name"])
	assert.Equal(t, "1:1", let["pos"])

	fn := let["value"].(map[string]any)
	assert.Equal(t, "FunctionLiteral", fn["kind"])
	assert.Equal(t, []any{"a", "b"}, fn["parameters"])

	call := stmts[1].(map[string]any)["expression"].(map[string]any)
	assert.Equal(t, "CallExpression", call["kind"])
	assert.Equal(t, "2:4", call["pos"])
	args := call["arguments"].([]any)
	require.Len(t, args, 2)
	assert.Equal(t, 1, args[0].(map[string]any)["value"])
	assert.Equal(t, "PrefixExpression", args[1].(map[string]any)["kind"])
}

func TestDumpCoversEveryNode(t *testing.T) {
	program := parse(t, "let x = if (a == b) { return -1; } else { fn() { true } }; f(x)")

	assert.NotPanics(t, func() {
		ast.Inspect(program, func(n ast.Node) bool {
			d := ast.Dump(n)
			assert.NotEmpty(t, d["kind"])
			return true
		})
	})
}
