package ast

import "fmt"

// Dump converts a node into plain maps and slices, suitable for JSON or YAML encoding.
// Every map carries a "kind" key naming the node type.
func Dump(node Node) map[string]any {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return map[string]any{
			"kind":       "Program",
			"statements": dumpStatements(n.Statements),
		}
	case *BlockStatement:
		return map[string]any{
			"kind":       "BlockStatement",
			"pos":        n.Token.Start.String(),
			"statements": dumpStatements(n.Statements),
		}
	case *LetStatement:
		return map[string]any{
			"kind":  "LetStatement",
			"pos":   n.Token.Start.String(),
			"name":  n.Name.Value,
			"value": dumpExpr(n.Value),
		}
	case *ReturnStatement:
		return map[string]any{
			"kind":  "ReturnStatement",
			"pos":   n.Token.Start.String(),
			"value": dumpExpr(n.ReturnValue),
		}
	case *ExpressionStatement:
		return map[string]any{
			"kind":       "ExpressionStatement",
			"pos":        n.Token.Start.String(),
			"expression": dumpExpr(n.Expression),
		}
	case *Identifier:
		return map[string]any{
			"kind":  "Identifier",
			"pos":   n.Token.Start.String(),
			"value": n.Value,
		}
	case *IntegerLiteral:
		return map[string]any{
			"kind":  "IntegerLiteral",
			"pos":   n.Token.Start.String(),
			"value": n.Value,
		}
	case *Boolean:
		return map[string]any{
			"kind":  "Boolean",
			"pos":   n.Token.Start.String(),
			"value": n.Value,
		}
	case *PrefixExpression:
		return map[string]any{
			"kind":     "PrefixExpression",
			"pos":      n.Token.Start.String(),
			"operator": n.Operator,
			"right":    dumpExpr(n.Right),
		}
	case *InfixExpression:
		return map[string]any{
			"kind":     "InfixExpression",
			"pos":      n.Token.Start.String(),
			"operator": n.Operator,
			"left":     dumpExpr(n.Left),
			"right":    dumpExpr(n.Right),
		}
	case *IfExpression:
		out := map[string]any{
			"kind":        "IfExpression",
			"pos":         n.Token.Start.String(),
			"condition":   dumpExpr(n.Condition),
			"consequence": Dump(n.Consequence),
		}
		if n.Alternative != nil {
			out["alternative"] = Dump(n.Alternative)
		}
		return out
	case *FunctionLiteral:
		params := make([]string, len(n.Parameters))
		for i, p := range n.Parameters {
			params[i] = p.Value
		}
		return map[string]any{
			"kind":       "FunctionLiteral",
			"pos":        n.Token.Start.String(),
			"parameters": params,
			"body":       Dump(n.Body),
		}
	case *CallExpression:
		args := make([]map[string]any, len(n.Arguments))
		for i, arg := range n.Arguments {
			args[i] = dumpExpr(arg)
		}
		return map[string]any{
			"kind":      "CallExpression",
			"pos":       n.Token.Start.String(),
			"function":  dumpExpr(n.Function),
			"arguments": args,
		}
	default:
		panic(fmt.Sprintf("ast.Dump: unexpected node %T", node))
	}
}

func dumpStatements(stmts []Statement) []map[string]any {
	out := make([]map[string]any, len(stmts))
	for i, stmt := range stmts {
		out[i] = Dump(stmt)
	}
	return out
}

func dumpExpr(expr Expression) map[string]any {
	if expr == nil {
		return nil
	}
	return Dump(expr)
}
