package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRendererModes(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want Mode
	}{
		{"explicit text", ModeText, ModeText},
		{"explicit markdown", ModeMarkdown, ModeMarkdown},
		{"explicit json", ModeJSON, ModeJSON},
		{"auto on a buffer falls back to markdown", ModeAuto, ModeMarkdown},
		{"unknown behaves as auto", Mode("fancy"), ModeMarkdown},
		{"empty behaves as auto", Mode(""), ModeMarkdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(new(bytes.Buffer), new(bytes.Buffer), tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestRendererWriters(t *testing.T) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	r := NewRenderer(out, errOut, ModeMarkdown)

	r.Println("line")
	r.Printf("%s %d\n", "count", 2)
	r.Success("done")
	r.Warning("careful")
	r.Error("broken")

	assert.Contains(t, out.String(), "line")
	assert.Contains(t, out.String(), "count 2")
	assert.Contains(t, out.String(), "✓ done")
	assert.Contains(t, errOut.String(), "! careful")
	assert.Contains(t, errOut.String(), "✗ broken")
}

func TestRendererJSON(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewRenderer(out, new(bytes.Buffer), ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"files": 3}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 3, decoded["files"])
}
