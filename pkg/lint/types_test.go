package lint_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sitelint/pkg/lint"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   lint.Severity
		wantOK bool
	}{
		{name: "error", input: "error", want: lint.SeverityError, wantOK: true},
		{name: "warning", input: "warning", want: lint.SeverityWarning, wantOK: true},
		{name: "case insensitive", input: "ERROR", want: lint.SeverityError, wantOK: true},
		{name: "off is not a severity", input: "off", want: lint.SeverityWarning, wantOK: false},
		{name: "empty", input: "", want: lint.SeverityWarning, wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := lint.ParseSeverity(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestSeverityJSON(t *testing.T) {
	raw, err := json.Marshal(lint.SeverityError)
	require.NoError(t, err)
	assert.Equal(t, `"error"`, string(raw))

	raw, err = json.Marshal(lint.SeverityWarning)
	require.NoError(t, err)
	assert.Equal(t, `"warning"`, string(raw))
}

func TestRuleDefInfo(t *testing.T) {
	def := lint.RuleDef{
		Name:        "title-length",
		Field:       "title",
		Group:       "seo",
		Description: "Title length within bounds",
		Severity:    lint.SeverityError,
		FixStrategy: "rewrite-title",
		Disabled:    true,
	}
	info := def.Info()
	assert.Equal(t, "title-length", info.Name)
	assert.Equal(t, "error", info.Severity)
	assert.Equal(t, "rewrite-title", info.FixStrategy)
	assert.True(t, info.Disabled)
}
