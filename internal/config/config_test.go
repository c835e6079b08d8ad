package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePromptsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPrompts_Success(t *testing.T) {
	path := writePromptsFile(t, "furniture: |\n  list the furniture\nfloor_mapping: |\n  list the room mix\n")

	prompts, err := LoadPrompts(path)

	require.NoError(t, err)
	assert.Contains(t, prompts.Furniture, "list the furniture")
	assert.Contains(t, prompts.FloorMapping, "list the room mix")
}

func TestLoadPrompts_MissingFile(t *testing.T) {
	_, err := LoadPrompts(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestLoadPrompts_MissingPromptText(t *testing.T) {
	path := writePromptsFile(t, "furniture: only one prompt\n")

	_, err := LoadPrompts(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "floor_mapping")
}

func TestLoadPrompts_InvalidYAML(t *testing.T) {
	path := writePromptsFile(t, "furniture: [broken\n")

	_, err := LoadPrompts(path)

	assert.Error(t, err)
}
