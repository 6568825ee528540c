package translate

import (
	"fmt"
)

// Expr is one node in an access-expression chain: a description of how to
// navigate from a root model object to a target property, including
// intermediate indexing. Chains are built by callers (or by a parsing
// front-end) and consumed by Translator; the node set is closed.
//
// Root, Member, and Index form the path spine. Const, FieldRead,
// PropertyRead, and Convert may only appear inside index arguments, where
// the literal evaluator resolves them to integers.
type Expr interface {
	// Shape describes the node for diagnostics, e.g. "member access .Name".
	Shape() string
	exprNode()
}

// Root marks the bottom of an access chain: the model object the rendered
// path is relative to.
type Root struct{}

// Member is a named member access on Object, e.g. expr.Name.
type Member struct {
	Object Expr
	Name   string
}

// Index is an index access on Object, e.g. expr[arg]. Arg is resolved to
// an integer by the literal evaluator at translation time.
type Index struct {
	Object Expr
	Arg    Expr
}

// Const is a value captured when the expression was built, typically a
// literal or a snapshot of a captured variable's environment.
type Const struct {
	Value any
}

// FieldRead reads the named field off the value Object evaluates to.
// Struct fields and string-keyed map entries both qualify.
type FieldRead struct {
	Object Expr
	Name   string
}

// PropertyRead calls the named zero-argument method on the value Object
// evaluates to and yields its first result.
type PropertyRead struct {
	Object Expr
	Name   string
}

// Convert applies a numeric conversion to the value Inner evaluates to.
// When Fn is nil a generic integer coercion is used instead.
type Convert struct {
	Inner Expr
	Fn    func(any) (int, error)
}

func (Root) exprNode()         {}
func (Member) exprNode()       {}
func (Index) exprNode()        {}
func (Const) exprNode()        {}
func (FieldRead) exprNode()    {}
func (PropertyRead) exprNode() {}
func (Convert) exprNode()      {}

func (Root) Shape() string { return "root" }

func (e Member) Shape() string { return "member access ." + e.Name }

func (Index) Shape() string { return "index access" }

func (e Const) Shape() string { return fmt.Sprintf("constant %T", e.Value) }

func (e FieldRead) Shape() string { return "field read ." + e.Name }

func (e PropertyRead) Shape() string { return "property read ." + e.Name + "()" }

func (Convert) Shape() string { return "numeric conversion" }

// UnsupportedExpressionError reports an expression node that neither the
// path recursion nor the literal evaluator was designed to understand. It
// signals a mismatch between the chains a caller constructs and the shapes
// this package supports, not a recoverable runtime condition.
type UnsupportedExpressionError struct {
	// Kind describes the offending node's shape.
	Kind string
}

func (e *UnsupportedExpressionError) Error() string {
	return "unsupported expression kind: " + e.Kind
}

func unsupported(kind string) error {
	return &UnsupportedExpressionError{Kind: kind}
}

func shapeOf(expr Expr) string {
	if expr == nil {
		return "nil expression"
	}
	return expr.Shape()
}
