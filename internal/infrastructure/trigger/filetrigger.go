// Package trigger writes the out-of-band turn trigger consumed by the
// simulation scheduler. The file content is informational only; the
// scheduler reacts to the file's existence.
package trigger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const triggerFileName = "trigger_turn"

// FileTrigger drops trigger files into a directory shared with the
// simulation scheduler.
type FileTrigger struct {
	dir string
}

// NewFileTrigger creates a trigger writer for the given shared directory.
func NewFileTrigger(dir string) *FileTrigger {
	return &FileTrigger{dir: dir}
}

// RequestTurn writes the trigger file, creating the directory if needed.
func (t *FileTrigger) RequestTurn() error {
	if err := os.MkdirAll(t.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create trigger directory: %w", err)
	}

	content := fmt.Sprintf("trigger_requested_at=%s", time.Now().Format(time.RFC3339))
	path := filepath.Join(t.dir, triggerFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write trigger file: %w", err)
	}

	return nil
}
