package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sitelint/internal/cli/output"
)

func TestEffectiveMode(t *testing.T) {
	var buf bytes.Buffer

	// A buffer is not a terminal: auto resolves to markdown.
	r := output.NewRenderer(&buf, &buf, output.ModeAuto)
	assert.Equal(t, output.ModeMarkdown, r.EffectiveMode())

	r = output.NewRenderer(&buf, &buf, output.ModeJSON)
	assert.Equal(t, output.ModeJSON, r.EffectiveMode())

	r = output.NewRenderer(&buf, &buf, output.ModeText)
	assert.Equal(t, output.ModeText, r.EffectiveMode())
}

func TestRendererJSON(t *testing.T) {
	var buf bytes.Buffer
	r := output.NewRenderer(&buf, &buf, output.ModeJSON)

	require.NoError(t, r.JSON(map[string]any{"count": 2}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.EqualValues(t, 2, decoded["count"])
}

func TestRendererPlainStylesOutsideTextMode(t *testing.T) {
	var buf bytes.Buffer
	r := output.NewRenderer(&buf, &buf, output.ModeMarkdown)

	// Outside text mode the styles are no-ops, so output stays greppable.
	styled := r.Styles().Error.Render("failed")
	assert.Equal(t, "failed", styled)
}
