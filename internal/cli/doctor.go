package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"velo/internal/common"
	"velo/internal/config"
	"velo/internal/doctor"
	"velo/internal/platform"
)

var (
	doctorVerbose bool
	doctorFix     bool
	doctorJSON    bool
)

// hostEnvironment builds the probes and command locator doctor runs against.
// Tests replace it to avoid touching the real host.
var hostEnvironment = func(cfg *config.Config, logger *common.Logger) (doctor.Probes, platform.CommandLocator) {
	executor := platform.NewCommandExecutor(logger)
	return doctor.SystemProbes(executor, cfg.ProbeTimeout), platform.NewCommandLocator(executor, cfg.ProbeTimeout)
}

var doctorCmd = &cobra.Command{
	Use:   CmdDoctor,
	Short: "Check the Velo installation for problems",
	Long: `Check the Velo installation and the current project for problems.

🩺 CHECKS:
- Architecture and OS version
- Velo directories and write permissions
- PATH configuration
- Installed packages (receipts and bin symlinks)
- Free disk space
- Project context and command resolution order

💻 USAGE EXAMPLES:
    velo doctor                  # Run every check
    velo doctor --verbose        # Also list healthy packages and run details
    velo doctor --fix            # Recreate missing directories, then re-check
    velo doctor --json           # Machine-readable report

The command exits with status 1 when issues remain.`,
	RunE: runDoctor,
}

// doctorResult is the --json document.
type doctorResult struct {
	Report   *doctor.Report    `json:"report"`
	Summary  doctor.Summary    `json:"summary"`
	Fix      *doctor.FixReport `json:"fix,omitempty"`
	AfterFix *doctor.Summary   `json:"after_fix,omitempty"`
	Final    *doctor.Report    `json:"final_report,omitempty"`
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return NewConfigError("Failed to load configuration", err)
	}

	logger, err := common.NewLogger(LOGGER_COMPONENT, cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return NewConfigError("Invalid log level", err)
	}
	defer logger.Sync()
	if doctorVerbose {
		if err := logger.SetLevel(LOG_LEVEL_VERBOSE); err != nil {
			return NewRuntimeError("Failed to enable verbose logging", err)
		}
	}

	probes, locator := hostEnvironment(cfg, logger)
	d, err := doctor.New(doctor.Options{
		Config:  cfg,
		Probes:  probes,
		Locator: locator,
		Verbose: doctorVerbose,
		Logger:  logger,
	})
	if err != nil {
		return NewRuntimeError("Failed to initialize doctor", err)
	}
	// One lock spans the first run, the fix and the re-run.
	unlock := d.Lock()
	defer unlock()

	out := cmd.OutOrStdout()
	om := doctor.NewOutputManager(out, doctorJSON, doctorVerbose, colorsFor(out))
	ctx := cmd.Context()

	report := d.Run(ctx)
	result := doctorResult{Report: report, Summary: report.Summary()}
	if !om.JSONMode() {
		if err := om.OutputReport(report, doctorFix); err != nil {
			return err
		}
	}

	final := report
	if doctorFix && report.HasProblems() {
		result.Fix = d.Fix(ctx, report)
		om.OutputFix(result.Fix)

		final = d.Run(ctx)
		summary := final.Summary()
		result.AfterFix = &summary
		result.Final = final
		om.OutputSummary(doctor.AfterFixTitle, final)
	}

	if om.JSONMode() {
		if err := om.OutputJSON(result); err != nil {
			return NewRuntimeError("Failed to write report", err)
		}
	}

	if final.HasIssues() {
		return &ExitError{Code: EXIT_ISSUES}
	}
	return nil
}

func colorsFor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && doctor.ColorEnabled(f)
}

func init() {
	doctorCmd.Flags().BoolVarP(&doctorVerbose, FLAG_VERBOSE, "v", false, "Show detailed output")
	doctorCmd.Flags().BoolVar(&doctorFix, FLAG_FIX, false, "Attempt to fix detected issues")
	doctorCmd.Flags().BoolVar(&doctorJSON, FLAG_JSON, false, "Output the report in JSON format")

	rootCmd.AddCommand(doctorCmd)
}
