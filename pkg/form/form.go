// Package form is the high-level entry point for generating model-binding
// form-field names. An Engine pairs an expression parser with the path
// translator; templates call NameFor to turn an access expression into the
// name attribute an external model binder expects on submission.
package form

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/formpath/internal/celexpr"
	"github.com/oakwood-commons/formpath/pkg/translate"
)

// Parser turns an expression string into an access-expression chain.
type Parser interface {
	Parse(expr string) (translate.Expr, error)
}

// Engine resolves expression strings into binding-path field names.
type Engine struct {
	parser Parser
	vars   map[string]any
	log    logr.Logger
}

// Option configures the Engine.
type Option func(*Engine)

// WithParser sets a custom expression parser.
func WithParser(p Parser) Option {
	return func(e *Engine) {
		e.parser = p
	}
}

// WithVars supplies named values for free identifiers in index arguments,
// read at translation time. Ignored when a custom parser is installed.
func WithVars(vars map[string]any) Option {
	return func(e *Engine) {
		e.vars = vars
	}
}

// WithLogger installs a logger for V(1) translation traces.
func WithLogger(log logr.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// New creates an Engine with defaults: the CEL expression parser and a
// discarded logger.
func New(opts ...Option) (*Engine, error) {
	engine := &Engine{
		log: logr.Discard(),
	}
	for _, opt := range opts {
		opt(engine)
	}
	if engine.parser == nil {
		parser, err := celexpr.NewParser(celexpr.WithVars(engine.vars))
		if err != nil {
			return nil, err
		}
		engine.parser = parser
	}
	return engine, nil
}

// NameFor parses expr, translates it against root, and returns the rendered
// binding path, e.g. NameFor(model, "_.Attendance[2].Name") returns
// "Attendance[2].Name". Index arguments that read fields or call getters
// are resolved against root (and any WithVars bindings) at call time.
func (e *Engine) NameFor(root any, expr string) (string, error) {
	chain, err := e.parser.Parse(expr)
	if err != nil {
		return "", fmt.Errorf("parse expression: %w", err)
	}
	b, err := translate.NewTranslator(root, translate.WithLogger(e.log)).Translate(chain)
	if err != nil {
		return "", err
	}
	e.log.V(1).Info("translated expression", "expr", expr, "name", b.String())
	return b.String(), nil
}
