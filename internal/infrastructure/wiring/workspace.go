package wiring

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Laman1911/AS-Calculation/internal/infrastructure/config"
	"github.com/Laman1911/AS-Calculation/pkg/application"
	"github.com/Laman1911/AS-Calculation/pkg/storage"
)

// ErrNotInitialized is returned when the workspace directory does not exist yet.
var ErrNotInitialized = errors.New("workspace not initialized")

// Workspace bundles core infrastructure dependencies.
type Workspace struct {
	Root   string
	Dir    *storage.Workspace
	Config *config.Config
	Repo   *storage.SQLiteRepository
	Audit  *application.AuditService
	Logger *slog.Logger
}

// OpenWorkspace loads the workspace config and opens its database.
func OpenWorkspace(root string) (*Workspace, error) {
	dir := storage.NewWorkspace(root)
	if !dir.IsInitialized() {
		return nil, fmt.Errorf("%w at %s", ErrNotInitialized, root)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	repo, err := storage.OpenSQLite(cfg.ResolveDBPath(root))
	if err != nil {
		return nil, err
	}

	return &Workspace{
		Root:   root,
		Dir:    dir,
		Config: cfg,
		Repo:   repo,
		Audit:  application.NewAuditService(storage.NewFileAuditStore(dir)),
		Logger: cfg.NewLogger(os.Stderr),
	}, nil
}

func (w *Workspace) Close() error {
	return w.Repo.Close()
}
