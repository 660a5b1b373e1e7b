package doctor

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"velo/internal/common"
)

const (
	IconOk      = "✅"
	IconIssue   = "❌"
	IconWarning = "⚠️ "
	IconInfo    = "ℹ️ "
)

const (
	ReportTitle       = "🩺 Velo Doctor"
	FixTitle          = "Fixing detected issues..."
	FixAttemptMessage = "Attempting to fix issues..."
	AfterFixTitle     = "After fixes:"
	SummaryTitle      = "Summary:"
	DetailsTitle      = "Report Details:"
)

// ColorEnabled reports whether output to f should be colorized.
func ColorEnabled(f *os.File) bool {
	if os.Getenv(common.ENV_NO_COLOR) != "" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// OutputManager renders reports either as human text or as JSON.
type OutputManager struct {
	out      io.Writer
	jsonMode bool
	verbose  bool

	issueColor   *color.Color
	warningColor *color.Color
	okColor      *color.Color
	faintColor   *color.Color
}

func NewOutputManager(out io.Writer, jsonMode, verbose, colors bool) *OutputManager {
	om := &OutputManager{
		out:          out,
		jsonMode:     jsonMode,
		verbose:      verbose,
		issueColor:   color.New(color.FgRed),
		warningColor: color.New(color.FgYellow),
		okColor:      color.New(color.FgGreen),
		faintColor:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{om.issueColor, om.warningColor, om.okColor, om.faintColor} {
		if colors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return om
}

func (om *OutputManager) JSONMode() bool {
	return om.jsonMode
}

func (om *OutputManager) OutputJSON(data interface{}) error {
	encoder := json.NewEncoder(om.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func (om *OutputManager) PrintHeader(title string) {
	if om.jsonMode {
		return
	}
	fmt.Fprintf(om.out, "%s\n", title)
	fmt.Fprintf(om.out, "%s\n\n", strings.Repeat("=", len([]rune(title))+1))
}

// OutputReport prints every section followed by the summary. The --fix hint
// is only shown when fixing was not requested.
func (om *OutputManager) OutputReport(report *Report, fixRequested bool) error {
	if om.jsonMode {
		return om.OutputJSON(report)
	}

	om.PrintHeader(ReportTitle)

	if om.verbose && len(report.Metadata) > 0 {
		fmt.Fprintln(om.out, DetailsTitle)
		keys := make([]string, 0, len(report.Metadata))
		for key := range report.Metadata {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		title := cases.Title(language.English)
		for _, key := range keys {
			fmt.Fprintf(om.out, "  %s: %s\n", title.String(key), report.Metadata[key])
		}
		fmt.Fprintln(om.out)
	}

	for _, notice := range report.Notices {
		om.printOutcome(notice, "")
	}

	for _, section := range report.Sections {
		fmt.Fprintf(om.out, "Checking %s...\n", section.Name)
		for _, outcome := range section.Outcomes {
			om.printOutcome(outcome, "  ")
		}
	}

	fmt.Fprintln(om.out)
	om.OutputSummary(SummaryTitle, report)

	if report.HasProblems() {
		fmt.Fprintln(om.out)
		if fixRequested {
			fmt.Fprintln(om.out, FixAttemptMessage)
		} else {
			fmt.Fprintln(om.out, MSG_SUMMARY_FIX_HINT)
		}
	}
	return nil
}

func (om *OutputManager) OutputSummary(title string, report *Report) {
	if om.jsonMode {
		return
	}
	fmt.Fprintln(om.out, title)

	summary := report.Summary()
	if summary.Clean {
		fmt.Fprintf(om.out, "%s %s\n", IconOk, om.okColor.Sprint(MSG_SUMMARY_CLEAN))
		return
	}
	if summary.Issues > 0 {
		fmt.Fprintf(om.out, "%s %s\n", IconIssue, om.issueColor.Sprintf(MSG_SUMMARY_ISSUES, summary.Issues))
	}
	if summary.Warnings > 0 {
		fmt.Fprintf(om.out, "%s %s\n", IconWarning, om.warningColor.Sprintf(MSG_SUMMARY_WARNINGS, summary.Warnings))
	}
}

func (om *OutputManager) OutputFix(fix *FixReport) {
	if om.jsonMode || fix == nil || !fix.Attempted {
		return
	}
	fmt.Fprintln(om.out, FixTitle)

	if len(fix.Created) == 0 && len(fix.Failures) == 0 {
		om.printOutcome(Info("fix", MSG_FIX_NOTHING), "  ")
	}
	for _, dir := range fix.Created {
		om.printOutcome(Ok("fix", MSG_FIX_CREATED, dir.Name, dir.Path), "  ")
	}
	for _, failure := range fix.Failures {
		om.printOutcome(Issue("fix", MSG_FIX_DIRS_FAILED, failure), "  ")
	}
	if fix.ManualIntervention {
		om.printOutcome(Info("fix", MSG_FIX_MANUAL), "  ")
	}
	fmt.Fprintln(om.out)
}

func (om *OutputManager) printOutcome(outcome CheckOutcome, indent string) {
	icon := outcome.Icon
	if icon == "" {
		icon = severityIcon(outcome.Severity)
	}

	message := outcome.Message
	switch outcome.Severity {
	case SeverityIssue:
		message = om.issueColor.Sprint(message)
	case SeverityWarning:
		message = om.warningColor.Sprint(message)
	}

	fmt.Fprintf(om.out, "%s%s %s\n", indent, icon, message)
	for _, detail := range outcome.Details {
		fmt.Fprintf(om.out, "%s   %s\n", indent, om.faintColor.Sprint(detail))
	}
}

func severityIcon(severity Severity) string {
	switch severity {
	case SeverityIssue:
		return IconIssue
	case SeverityWarning:
		return IconWarning
	case SeverityInfo:
		return IconInfo
	default:
		return IconOk
	}
}
