package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"velo/internal/version"
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "velo",
	Short: "Velo - a fast package manager for developer tools",
	Long: `Velo installs developer tools into a self-contained home (~/.velo by
default) and, inside a project, into a project-local .velo directory.

Use 'velo doctor' to check that the installation and the current project
are healthy.`,
	Version: version.Version,
	// Don't show usage when there's an error
	SilenceUsage: true,
	// Don't show errors (we'll handle them ourselves)
	SilenceErrors: true,
}

// Execute runs the root command. Interrupts cancel the command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, FLAG_CONFIG, "", "Config file (default is $VELO_HOME/config.yaml)")
}
