package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WorkspaceDir is the per-workspace state directory.
const WorkspaceDir = ".kalkulation"

const (
	DBFile     = "kalkulation.db"
	EventsFile = "events.jsonl"
	ConfigFile = "config.yaml"
)

// Workspace resolves paths inside a workspace's state directory.
type Workspace struct {
	root string
}

func NewWorkspace(root string) *Workspace {
	return &Workspace{root: root}
}

// Root returns the workspace root directory.
func (w *Workspace) Root() string {
	return w.root
}

// Dir returns the state directory.
func (w *Workspace) Dir() string {
	return filepath.Join(w.root, WorkspaceDir)
}

// ResolvePath ensures the path is a direct child of the state directory and prevents traversal.
func (w *Workspace) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	baseDir := w.Dir()
	cleanPath := filepath.Clean(filepath.Join(baseDir, filename))

	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (w *Workspace) Initialize() error {
	// G301: Use 0700 for directories
	if err := os.MkdirAll(w.Dir(), 0700); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", WorkspaceDir, err)
	}
	return nil
}

func (w *Workspace) IsInitialized() bool {
	_, err := os.Stat(w.Dir())
	return err == nil
}
