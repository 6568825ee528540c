// Package celexpr lowers CEL property-access expressions into translate
// expression chains. The model object is referenced by the variable "_",
// e.g. "_.Attendance[2].Name"; a leading bare identifier is treated as a
// member access on the model, so "Attendance[2].Name" is equivalent.
package celexpr

import (
	"fmt"

	"github.com/google/cel-go/cel"
	celast "github.com/google/cel-go/common/ast"
	"github.com/google/cel-go/common/operators"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/oakwood-commons/formpath/pkg/translate"
)

// RootVar is the expression variable that refers to the model object.
const RootVar = "_"

// itemFunc is the member-call spelling of an index access. Both encodings
// lower to the same Index node.
const itemFunc = "getItem"

// Parser compiles expression strings into access-expression chains. The
// CEL environment is parse-only; no type checking or evaluation happens
// here, so arbitrary identifiers are accepted and resolved at lowering.
type Parser struct {
	env  *cel.Env
	vars map[string]any
}

// Option configures a Parser.
type Option func(*Parser)

// WithVars supplies named values for free identifiers appearing in index
// arguments. They stand in for variables captured at expression-build time:
// an identifier found in vars lowers to a field read against the vars map
// itself, so its current value is read at translation time.
func WithVars(vars map[string]any) Option {
	return func(p *Parser) {
		p.vars = vars
	}
}

// NewParser creates a Parser with an empty variable environment.
func NewParser(opts ...Option) (*Parser, error) {
	env, err := cel.NewEnv(cel.Variable(RootVar, cel.DynType))
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}
	p := &Parser{env: env}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Parse parses expr and lowers it to an access chain rooted at RootVar.
// CEL node kinds outside the supported access shapes surface as
// translate.UnsupportedExpressionError.
func (p *Parser) Parse(expr string) (translate.Expr, error) {
	ast, iss := p.env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("parse %q: %w", expr, iss.Err())
	}
	return p.lowerPath(ast.NativeRep().Expr())
}

// lowerPath lowers a node in path position: the member/index spine of the
// access chain.
func (p *Parser) lowerPath(e celast.Expr) (translate.Expr, error) {
	switch e.Kind() {
	case celast.IdentKind:
		if e.AsIdent() == RootVar {
			return translate.Root{}, nil
		}
		// Bare leading identifier: member access with the root elided.
		return translate.Member{Object: translate.Root{}, Name: e.AsIdent()}, nil
	case celast.SelectKind:
		sel := e.AsSelect()
		obj, err := p.lowerPath(sel.Operand())
		if err != nil {
			return nil, err
		}
		return translate.Member{Object: obj, Name: sel.FieldName()}, nil
	case celast.CallKind:
		return p.lowerIndexCall(e.AsCall())
	default:
		return nil, &translate.UnsupportedExpressionError{Kind: kindName(e)}
	}
}

// lowerIndexCall recognizes the two spellings of an index access, the
// "_[_]" operator and the getItem member call, and lowers both to Index.
func (p *Parser) lowerIndexCall(call celast.CallExpr) (translate.Expr, error) {
	var objNode celast.Expr
	var argNode celast.Expr
	switch {
	case call.FunctionName() == operators.Index && len(call.Args()) == 2:
		objNode, argNode = call.Args()[0], call.Args()[1]
	case call.IsMemberFunction() && call.FunctionName() == itemFunc && len(call.Args()) == 1:
		objNode, argNode = call.Target(), call.Args()[0]
	default:
		return nil, &translate.UnsupportedExpressionError{Kind: "call " + call.FunctionName()}
	}
	obj, err := p.lowerPath(objNode)
	if err != nil {
		return nil, err
	}
	arg, err := p.lowerArg(argNode)
	if err != nil {
		return nil, err
	}
	return translate.Index{Object: obj, Arg: arg}, nil
}

// lowerArg lowers a node in index-argument position into the literal
// evaluator's shape set: constants, field-read chains, and conversions.
func (p *Parser) lowerArg(e celast.Expr) (translate.Expr, error) {
	switch e.Kind() {
	case celast.LiteralKind:
		v := litValue(e.AsLiteral())
		if _, ok := v.(float64); ok {
			// Fractional literals only index after an integer conversion.
			return translate.Convert{Inner: translate.Const{Value: v}}, nil
		}
		return translate.Const{Value: v}, nil
	case celast.IdentKind:
		name := e.AsIdent()
		if name == RootVar {
			return translate.Root{}, nil
		}
		if p.vars != nil {
			if _, ok := p.vars[name]; ok {
				return translate.FieldRead{Object: translate.Const{Value: p.vars}, Name: name}, nil
			}
		}
		// Unbound identifiers read off the model object itself.
		return translate.FieldRead{Object: translate.Root{}, Name: name}, nil
	case celast.SelectKind:
		sel := e.AsSelect()
		obj, err := p.lowerArg(sel.Operand())
		if err != nil {
			return nil, err
		}
		return translate.FieldRead{Object: obj, Name: sel.FieldName()}, nil
	case celast.CallKind:
		call := e.AsCall()
		if call.FunctionName() == "int" && !call.IsMemberFunction() && len(call.Args()) == 1 {
			inner, err := p.lowerArg(call.Args()[0])
			if err != nil {
				return nil, err
			}
			return translate.Convert{Inner: inner}, nil
		}
		return nil, &translate.UnsupportedExpressionError{Kind: "call " + call.FunctionName()}
	default:
		return nil, &translate.UnsupportedExpressionError{Kind: kindName(e)}
	}
}

// litValue converts a CEL literal to its Go value.
func litValue(v ref.Val) any {
	switch t := v.(type) {
	case types.Int:
		return int64(t)
	case types.Uint:
		return uint64(t)
	case types.Double:
		return float64(t)
	case types.String:
		return string(t)
	case types.Bool:
		return bool(t)
	case types.Bytes:
		return []byte(t)
	default:
		return v.Value()
	}
}

func kindName(e celast.Expr) string {
	switch e.Kind() {
	case celast.CallKind:
		return "call " + e.AsCall().FunctionName()
	case celast.ComprehensionKind:
		return "comprehension"
	case celast.IdentKind:
		return "identifier " + e.AsIdent()
	case celast.ListKind:
		return "list literal"
	case celast.LiteralKind:
		return "literal"
	case celast.MapKind:
		return "map literal"
	case celast.SelectKind:
		return "select ." + e.AsSelect().FieldName()
	case celast.StructKind:
		return "struct literal"
	default:
		return "unspecified"
	}
}
