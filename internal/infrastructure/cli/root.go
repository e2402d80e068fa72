package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// projectPath overrides the working directory as the workspace root.
var projectPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "kalkulation",
	Version: Version,
	Short:   "Estimate, track and forecast project hours",
	Long: `Kalkulation keeps projects, tasks and registered hours in a local workspace
and answers:
1. How many hours are estimated and how many are registered?
2. How many hours remain?
3. How many hours per working day are needed to finish on time?`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	err := RootCmd.Execute()
	var cliErr *CLIError
	if errors.As(err, &cliErr) && cliErr.Hint != "" {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", cliErr.Hint)
	}
	return err
}

func init() {
	RootCmd.PersistentFlags().StringVar(&projectPath, "project-dir", "", "Workspace root (defaults to the current directory)")
}
