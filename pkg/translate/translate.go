// Package translate converts property/index access-expression chains into
// model-binding form-field names. A chain such as root → member "Attendance"
// → index 2 → member "Name" translates to "Attendance[2].Name", the format
// an external model binder parses back out of submitted form values.
package translate

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/formpath/pkg/fieldpath"
)

// Translator converts access-expression chains into binding paths for one
// root object. Translation is a stateless single pass per call; a Translator
// may be reused across chains and is safe for concurrent use as long as the
// objects its literal evaluator reads are.
type Translator struct {
	root any
	log  logr.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithLogger installs a logger for V(1) translation traces.
func WithLogger(log logr.Logger) Option {
	return func(t *Translator) {
		t.log = log
	}
}

// NewTranslator returns a Translator bound to root. The root object anchors
// the chain's Root node; it is only ever read when the literal evaluator
// resolves an index argument through it.
func NewTranslator(root any, opts ...Option) *Translator {
	t := &Translator{
		root: root,
		log:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name translates expr against root and renders the resulting binding path.
// On failure nothing is rendered; the error is returned as-is.
func Name(root any, expr Expr) (string, error) {
	b, err := NewTranslator(root).Translate(expr)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// Translate walks expr outside-in, resolving the object sub-expression
// before appending the current segment, and returns the equivalent path
// builder. Chains that contain nodes outside {Root, Member, Index} in path
// position fail with UnsupportedExpressionError.
func (t *Translator) Translate(expr Expr) (fieldpath.Builder, error) {
	switch e := expr.(type) {
	case Root:
		return fieldpath.New(), nil
	case Member:
		b, err := t.Translate(e.Object)
		if err != nil {
			return fieldpath.Builder{}, err
		}
		b = b.AppendMember(e.Name)
		t.log.V(1).Info("appended member", "name", e.Name, "path", b.String())
		return b, nil
	case Index:
		b, err := t.Translate(e.Object)
		if err != nil {
			return fieldpath.Builder{}, err
		}
		i, err := t.Evaluate(e.Arg)
		if err != nil {
			return fieldpath.Builder{}, err
		}
		b = b.AppendIndex(i)
		t.log.V(1).Info("appended index", "index", i, "path", b.String())
		return b, nil
	default:
		return fieldpath.Builder{}, unsupported(shapeOf(expr))
	}
}

// Evaluate resolves an index-argument expression to an integer. Field and
// property reads run against live objects at call time, so evaluation may
// invoke arbitrary getters reachable from the chain.
func (t *Translator) Evaluate(expr Expr) (int, error) {
	v, err := t.eval(expr)
	if err != nil {
		return 0, err
	}
	i, ok := coerceInt(v)
	if !ok {
		return 0, unsupported(fmt.Sprintf("%s yielding non-integer %T", shapeOf(expr), v))
	}
	return i, nil
}

func (t *Translator) eval(expr Expr) (any, error) {
	switch e := expr.(type) {
	case Const:
		return e.Value, nil
	case Root:
		return t.root, nil
	case FieldRead:
		obj, err := t.eval(e.Object)
		if err != nil {
			return nil, err
		}
		return readField(obj, e.Name)
	case PropertyRead:
		obj, err := t.eval(e.Object)
		if err != nil {
			return nil, err
		}
		return readProperty(obj, e.Name)
	case Convert:
		v, err := t.eval(e.Inner)
		if err != nil {
			return nil, err
		}
		if e.Fn != nil {
			i, err := e.Fn(v)
			if err != nil {
				return nil, unsupported(fmt.Sprintf("numeric conversion of %T: %v", v, err))
			}
			return i, nil
		}
		i, ok := coerceInt(v)
		if !ok {
			return nil, unsupported(fmt.Sprintf("numeric conversion of non-integer %T", v))
		}
		return i, nil
	default:
		return nil, unsupported(shapeOf(expr))
	}
}

// readField resolves a named field on a live value: string-keyed map entry,
// or exported struct field matched by name or json tag.
func readField(obj any, name string) (any, error) {
	if m, ok := obj.(map[string]any); ok {
		v, ok := m[name]
		if !ok {
			return nil, unsupported(fmt.Sprintf("field read .%s: no such key", name))
		}
		return v, nil
	}

	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, unsupported(fmt.Sprintf("field read .%s on nil %T", name, obj))
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, unsupported(fmt.Sprintf("field read .%s on nil value", name))
	}

	switch rv.Kind() { //nolint:exhaustive // only container kinds carry named fields
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, unsupported(fmt.Sprintf("field read .%s on %T", name, obj))
		}
		v := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, unsupported(fmt.Sprintf("field read .%s: no such key", name))
		}
		return v.Interface(), nil
	case reflect.Struct:
		if v, ok := structFieldValue(rv, name); ok {
			return v, nil
		}
		return nil, unsupported(fmt.Sprintf("field read .%s: no such field on %s", name, rv.Type()))
	default:
		return nil, unsupported(fmt.Sprintf("field read .%s on %T", name, obj))
	}
}

func structFieldValue(rv reflect.Value, name string) (any, bool) {
	typ := rv.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		tagName := strings.Split(field.Tag.Get("json"), ",")[0]
		if tagName == "-" {
			continue
		}
		if tagName == name || field.Name == name {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

// readProperty calls the named zero-argument method on a live value and
// returns its first result. Value receivers are retried through an
// addressable copy so pointer-receiver getters also resolve.
func readProperty(obj any, name string) (any, error) {
	rv := reflect.ValueOf(obj)
	if !rv.IsValid() {
		return nil, unsupported(fmt.Sprintf("property read .%s() on nil value", name))
	}
	m := rv.MethodByName(name)
	if !m.IsValid() && rv.Kind() != reflect.Ptr {
		pv := reflect.New(rv.Type())
		pv.Elem().Set(rv)
		m = pv.MethodByName(name)
	}
	if !m.IsValid() {
		return nil, unsupported(fmt.Sprintf("property read .%s(): no such method on %T", name, obj))
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() < 1 {
		return nil, unsupported(fmt.Sprintf("property read .%s(): not a getter on %T", name, obj))
	}
	return m.Call(nil)[0].Interface(), nil
}

// coerceInt converts any integer-valued number (including integral floats,
// which YAML/JSON decoding commonly produces) to int.
func coerceInt(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() { //nolint:exhaustive // only numeric kinds coerce
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}
