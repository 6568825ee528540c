package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/formpath/pkg/settings"
	"github.com/oakwood-commons/formpath/pkg/translate"
)

// execute runs the root command with fresh parameters and captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	*runParams = *settings.NewCliParams()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTranslateLiteralIndex(t *testing.T) {
	out, err := execute(t, "-q", "_.Attendance[2].Name")
	require.NoError(t, err)
	assert.Equal(t, "Attendance[2].Name\n", out)
}

func TestTranslateElidedRoot(t *testing.T) {
	out, err := execute(t, "-q", "Attendance[2].Name")
	require.NoError(t, err)
	assert.Equal(t, "Attendance[2].Name\n", out)
}

func TestTranslateWithVarBinding(t *testing.T) {
	out, err := execute(t, "-q", "--var", "i=3", "Attendance[i].Name")
	require.NoError(t, err)
	assert.Equal(t, "Attendance[3].Name\n", out)
}

func TestTranslateWithModelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cursor: 1\n"), 0o644))

	out, err := execute(t, "-q", "--model", path, "Attendance[_.cursor].Name")
	require.NoError(t, err)
	assert.Equal(t, "Attendance[1].Name\n", out)
}

func TestTranslateUnsupportedExpression(t *testing.T) {
	_, err := execute(t, "-q", "_.Items.filter(x, x > 1)")
	require.Error(t, err)

	var unsupported *translate.UnsupportedExpressionError
	assert.ErrorAs(t, err, &unsupported)
}

func TestInvalidVarBinding(t *testing.T) {
	_, err := execute(t, "-q", "--var", "oops", "_.Name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --var binding")
}

func TestMissingModelFile(t *testing.T) {
	_, err := execute(t, "-q", "--model", filepath.Join(t.TempDir(), "absent.yaml"), "_.Name")
	require.Error(t, err)
}

func TestMissingExpressionArgument(t *testing.T) {
	_, err := execute(t, "-q")
	require.Error(t, err)
}

func TestParseVars(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    map[string]any
		wantErr bool
	}{
		{name: "empty", pairs: nil, want: nil},
		{name: "integer value", pairs: []string{"i=3"}, want: map[string]any{"i": 3}},
		{name: "string value", pairs: []string{"key=row"}, want: map[string]any{"key": "row"}},
		{name: "multiple bindings", pairs: []string{"i=0", "j=1"}, want: map[string]any{"i": 0, "j": 1}},
		{name: "value containing equals", pairs: []string{"k=a=b"}, want: map[string]any{"k": "a=b"}},
		{name: "missing equals", pairs: []string{"oops"}, wantErr: true},
		{name: "empty name", pairs: []string{"=1"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVars(tt.pairs)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrorsAreNotDoublePrinted(t *testing.T) {
	// SilenceUsage/SilenceErrors let main.go do the single print.
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}
