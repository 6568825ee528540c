package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/formpath/pkg/translate"
)

func TestNameForLiteralIndex(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	name, err := engine.NameFor(nil, "_.Attendance[2].Name")
	require.NoError(t, err)
	assert.Equal(t, "Attendance[2].Name", name)
}

func TestNameForWithVars(t *testing.T) {
	engine, err := New(WithVars(map[string]any{"i": 3}))
	require.NoError(t, err)

	name, err := engine.NameFor(nil, "_.Attendance[i].Name")
	require.NoError(t, err)
	assert.Equal(t, "Attendance[3].Name", name)
}

func TestNameForReadsModel(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	model := map[string]any{"meta": map[string]any{"cursor": 4}}
	name, err := engine.NameFor(model, "_.Rows[_.meta.cursor].Id")
	require.NoError(t, err)
	assert.Equal(t, "Rows[4].Id", name)
}

func TestNameForUnsupportedExpression(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	name, err := engine.NameFor(nil, "_.Items.filter(x, x > 1)")
	require.Error(t, err)
	assert.Empty(t, name)

	var unsupported *translate.UnsupportedExpressionError
	require.ErrorAs(t, err, &unsupported)
	assert.NotEmpty(t, unsupported.Kind)
}

func TestNameForParseError(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	_, err = engine.NameFor(nil, "_.Items[")
	require.Error(t, err)
}

type fixedParser struct {
	chain translate.Expr
	err   error
}

func (p fixedParser) Parse(string) (translate.Expr, error) {
	return p.chain, p.err
}

func TestWithParserInjection(t *testing.T) {
	chain := translate.Member{Object: translate.Root{}, Name: "Custom"}
	engine, err := New(WithParser(fixedParser{chain: chain}))
	require.NoError(t, err)

	name, err := engine.NameFor(nil, "ignored")
	require.NoError(t, err)
	assert.Equal(t, "Custom", name)
}

func TestWithParserError(t *testing.T) {
	engine, err := New(WithParser(fixedParser{err: errors.New("boom")}))
	require.NoError(t, err)

	_, err = engine.NameFor(nil, "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
