package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeHelpers(t *testing.T) {
	tests := []struct {
		name   string
		render func(bool) string
		token  string
	}{
		{name: "checked", render: Checked, token: "checked"},
		{name: "selected", render: Selected, token: "selected"},
		{name: "readonly", render: ReadOnly, token: "readonly"},
		{name: "disabled", render: Disabled, token: "disabled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.token, tt.render(true))
			assert.Equal(t, "", tt.render(false))
		})
	}
}

func TestIf(t *testing.T) {
	assert.Equal(t, "multiple", If(true, "multiple"))
	assert.Equal(t, "", If(false, "multiple"))
	assert.Equal(t, "", If(true, ""))
}
