package ast

// Inspect traverses the tree rooted at node depth-first, in source order.
// If f returns false for a node, its children are skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Statements {
			Inspect(stmt, f)
		}
	case *BlockStatement:
		for _, stmt := range n.Statements {
			Inspect(stmt, f)
		}
	case *LetStatement:
		Inspect(n.Name, f)
		inspectExpr(n.Value, f)
	case *ReturnStatement:
		inspectExpr(n.ReturnValue, f)
	case *ExpressionStatement:
		inspectExpr(n.Expression, f)
	case *PrefixExpression:
		inspectExpr(n.Right, f)
	case *InfixExpression:
		inspectExpr(n.Left, f)
		inspectExpr(n.Right, f)
	case *IfExpression:
		inspectExpr(n.Condition, f)
		Inspect(n.Consequence, f)
		if n.Alternative != nil {
			Inspect(n.Alternative, f)
		}
	case *FunctionLiteral:
		for _, param := range n.Parameters {
			Inspect(param, f)
		}
		Inspect(n.Body, f)
	case *CallExpression:
		inspectExpr(n.Function, f)
		for _, arg := range n.Arguments {
			inspectExpr(arg, f)
		}
	case *Identifier, *IntegerLiteral, *Boolean:
		// leaves
	}
}

// inspectExpr keeps a nil Expression from turning into a non-nil Node.
func inspectExpr(expr Expression, f func(Node) bool) {
	if expr != nil {
		Inspect(expr, f)
	}
}
