package cli

import (
	"encoding/json"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"velo/internal/version"
)

var VersionJSON bool

type VersionInfo struct {
	Version      string `json:"version"`
	GitCommit    string `json:"git_commit"`
	GitBranch    string `json:"git_branch"`
	BuildTime    string `json:"build_time"`
	BuildUser    string `json:"build_user"`
	GoVersion    string `json:"go_version"`
	Platform     string `json:"platform"`
	Architecture string `json:"architecture"`
	Compiler     string `json:"compiler"`
}

var versionCmd = &cobra.Command{
	Use:   CmdVersion,
	Short: "Show version and build information",
	Long: `Display version and build information for Velo.

💻 USAGE EXAMPLES:
    velo version                 # Human-readable version information
    velo version --json          # Machine-readable JSON format

🔧 BUILD INFORMATION:
Version information is injected at build time using:
  go build -ldflags "-X 'velo/internal/version.Version=v1.0.0'"

Include this output when reporting issues.`,
	RunE: runVersion,
}

func currentVersionInfo() VersionInfo {
	return VersionInfo{
		Version:      version.Version,
		GitCommit:    version.GitCommit,
		GitBranch:    version.GitBranch,
		BuildTime:    version.BuildTime,
		BuildUser:    version.BuildUser,
		GoVersion:    runtime.Version(),
		Platform:     runtime.GOOS,
		Architecture: runtime.GOARCH,
		Compiler:     runtime.Compiler,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := currentVersionInfo()
	out := cmd.OutOrStdout()

	if VersionJSON {
		jsonData, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal version information: %w", err)
		}
		fmt.Fprintln(out, string(jsonData))
		return nil
	}

	fmt.Fprintf(out, "Velo Version Information\n")
	fmt.Fprintf(out, "========================\n\n")
	fmt.Fprintf(out, "Version:      %s\n", info.Version)

	if info.GitCommit != ERROR_UNKNOWN_VALUE {
		if len(info.GitCommit) > 7 {
			fmt.Fprintf(out, "Git Commit:   %s (%s)\n", info.GitCommit[:7], info.GitCommit)
		} else {
			fmt.Fprintf(out, "Git Commit:   %s\n", info.GitCommit)
		}
	}

	if info.GitBranch != ERROR_UNKNOWN_VALUE {
		fmt.Fprintf(out, "Git Branch:   %s\n", info.GitBranch)
	}

	if info.BuildTime != ERROR_UNKNOWN_VALUE {
		if t, err := time.Parse(time.RFC3339, info.BuildTime); err == nil {
			fmt.Fprintf(out, "Build Time:   %s\n", t.UTC().Format("2006-01-02 15:04:05 UTC"))
		} else {
			fmt.Fprintf(out, "Build Time:   %s\n", info.BuildTime)
		}
	}

	if info.BuildUser != ERROR_UNKNOWN_VALUE {
		fmt.Fprintf(out, "Build User:   %s\n", info.BuildUser)
	}

	fmt.Fprintf(out, "\nRuntime Information:\n")
	fmt.Fprintf(out, "Go Version:   %s\n", info.GoVersion)
	fmt.Fprintf(out, "Platform:     %s\n", info.Platform)
	fmt.Fprintf(out, "Architecture: %s\n", info.Architecture)
	fmt.Fprintf(out, "Compiler:     %s\n", info.Compiler)
	return nil
}

func init() {
	versionCmd.Flags().BoolVar(&VersionJSON, FLAG_JSON, false, "Output version information in JSON format")

	rootCmd.AddCommand(versionCmd)
}
