package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewDataset() Dataset {
	return Dataset{
		Headers: []string{"Username", "Filename", "Submitted At"},
		Rows: []map[string]string{
			{"Username": "alice", "Filename": "Essay_alice_20260915_120000.pdf", "Submitted At": "2026-09-15T12:00:00Z"},
			{"Username": "bob", "Filename": "Essay_bob_20260915_130000.zip", "Submitted At": "2026-09-15T13:00:00Z"},
		},
	}
}

func TestCSVRender(t *testing.T) {
	data, err := NewCSVExporter().Render(reviewDataset())
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "Username,Filename,Submitted At", string(lines[0]))
	assert.Contains(t, string(lines[1]), "alice")
	assert.Contains(t, string(lines[2]), "bob")
}

func TestCSVRenderRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFRender(t *testing.T) {
	data, err := NewPDFExporter().Render(reviewDataset(), "Essay")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestPDFRenderRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "Essay")
	assert.Error(t, err)
}
