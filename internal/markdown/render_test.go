package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Usage\n\nrun `todo list`\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage")
	assert.Contains(t, out, "todo list")
}

func TestRenderOrRaw(t *testing.T) {
	assert.Contains(t, RenderOrRaw("plain words"), "plain words")
}

func TestRenderField(t *testing.T) {
	out := RenderField("Path", "/home/u/.todo")
	assert.Contains(t, out, "Path:")
	assert.Contains(t, out, "/home/u/.todo")
}

func TestRenderSettingsTable(t *testing.T) {
	out := RenderSettingsTable([][]string{{"path", "/x/.todo", "TODO_PATH"}})
	assert.Contains(t, out, "Setting")
	assert.Contains(t, out, "/x/.todo")
	assert.Contains(t, out, "TODO_PATH")
}
