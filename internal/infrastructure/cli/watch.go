package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Laman1911/AS-Calculation/internal/infrastructure/watch"
	"github.com/Laman1911/AS-Calculation/internal/infrastructure/wiring"
	"github.com/Laman1911/AS-Calculation/pkg/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch <project-id>",
	Short: "Print the project figures and refresh them whenever the workspace data changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(domain.KindProject, args[0])
		if err != nil {
			return MapError(err)
		}
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		defer services.Close()

		if err := refreshSummary(services, id); err != nil {
			return MapError(err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := watchProject(ctx, services, id); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

// watchProject recomputes the summary after each debounced change until ctx ends.
func watchProject(ctx context.Context, services *wiring.AppServices, id int64) error {
	ws := services.Workspace
	dbPath := ws.Config.ResolveDBPath(ws.Root)

	w, err := watch.NewFSWatcher(ws.Config.WatchDebounce, watch.DataFiles(filepath.Base(dbPath)), func(e watch.ChangeEvent) {
		ws.Logger.Debug("workspace changed", "path", e.Path, "change", e.ChangeType)
		fmt.Printf("\nChange detected at %s\n", time.Now().Format("15:04:05"))
		if err := refreshSummary(services, id); err != nil {
			fmt.Println(warnStyle.Render(MapError(err).Error()))
		}
	})
	if err != nil {
		return err
	}

	dirs := []string{ws.Dir.Dir()}
	if dbDir := filepath.Dir(dbPath); dbDir != ws.Dir.Dir() {
		dirs = append(dirs, dbDir)
	}
	if err := w.Watch(dirs...); err != nil {
		return err
	}

	fmt.Printf("Watching %s for changes... (Ctrl+C to stop)\n", ws.Dir.Dir())
	return w.Run(ctx)
}

func refreshSummary(services *wiring.AppServices, id int64) error {
	sum, err := services.Calc.Summary(id)
	if err != nil {
		return err
	}
	printSummary(sum)
	return nil
}

func init() {
	RootCmd.AddCommand(watchCmd)
}
