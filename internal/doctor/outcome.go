package doctor

import (
	"fmt"
	"time"
)

// Severity orders findings by how much they undermine a working install.
type Severity int

const (
	SeverityOk Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityIssue
)

func (s Severity) String() string {
	switch s {
	case SeverityOk:
		return "ok"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityIssue:
		return "issue"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CheckOutcome is one line of the report.
type CheckOutcome struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Details  []string `json:"details,omitempty"`

	// Fixable marks problems the remediation pass can repair.
	Fixable bool `json:"fixable,omitempty"`

	// Icon replaces the severity glyph for purely descriptive lines.
	Icon string `json:"-"`
}

func Ok(label, format string, args ...interface{}) CheckOutcome {
	return CheckOutcome{Label: label, Severity: SeverityOk, Message: fmt.Sprintf(format, args...)}
}

func Info(label, format string, args ...interface{}) CheckOutcome {
	return CheckOutcome{Label: label, Severity: SeverityInfo, Message: fmt.Sprintf(format, args...)}
}

func Warning(label, format string, args ...interface{}) CheckOutcome {
	return CheckOutcome{Label: label, Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}

func Issue(label, format string, args ...interface{}) CheckOutcome {
	return CheckOutcome{Label: label, Severity: SeverityIssue, Message: fmt.Sprintf(format, args...)}
}

func (o CheckOutcome) WithDetails(details ...string) CheckOutcome {
	o.Details = append(append([]string(nil), o.Details...), details...)
	return o
}

func (o CheckOutcome) WithIcon(icon string) CheckOutcome {
	o.Icon = icon
	return o
}

func (o CheckOutcome) AsFixable() CheckOutcome {
	o.Fixable = true
	return o
}

// Section groups the outcomes of one check.
type Section struct {
	Name     string         `json:"name"`
	Outcomes []CheckOutcome `json:"outcomes"`
}

// Report is the result of one doctor run.
type Report struct {
	Metadata  map[string]string `json:"metadata,omitempty"`
	Notices   []CheckOutcome    `json:"notices,omitempty"`
	Sections  []Section         `json:"sections"`
	StartedAt time.Time         `json:"started_at"`
	Duration  time.Duration     `json:"duration"`
}

// Outcomes returns every outcome in report order, notices first.
func (r *Report) Outcomes() []CheckOutcome {
	all := append([]CheckOutcome(nil), r.Notices...)
	for _, section := range r.Sections {
		all = append(all, section.Outcomes...)
	}
	return all
}

func (r *Report) count(severity Severity) int {
	n := 0
	for _, o := range r.Outcomes() {
		if o.Severity == severity {
			n++
		}
	}
	return n
}

func (r *Report) Issues() int {
	return r.count(SeverityIssue)
}

func (r *Report) Warnings() int {
	return r.count(SeverityWarning)
}

func (r *Report) HasIssues() bool {
	return r.Issues() > 0
}

// HasProblems is true when there is anything for the remediation pass to look at.
func (r *Report) HasProblems() bool {
	return r.Issues()+r.Warnings() > 0
}

// Section looks a section up by name.
func (r *Report) Section(name string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Summary is the machine-readable tail of a report.
type Summary struct {
	Issues   int  `json:"issues"`
	Warnings int  `json:"warnings"`
	Clean    bool `json:"clean"`
}

func (r *Report) Summary() Summary {
	issues, warnings := r.Issues(), r.Warnings()
	return Summary{Issues: issues, Warnings: warnings, Clean: issues == 0 && warnings == 0}
}
