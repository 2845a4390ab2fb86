package trigger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTrigger_RequestTurn(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "triggers")
	trigger := NewFileTrigger(dir)

	require.NoError(t, trigger.RequestTurn())

	content, err := os.ReadFile(filepath.Join(dir, "trigger_turn"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "trigger_requested_at="))
}

func TestFileTrigger_Overwrites(t *testing.T) {
	dir := t.TempDir()
	trigger := NewFileTrigger(dir)

	require.NoError(t, trigger.RequestTurn())
	require.NoError(t, trigger.RequestTurn())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "repeat triggers reuse the same file")
}
