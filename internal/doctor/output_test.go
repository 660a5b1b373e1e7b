package doctor

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velo/internal/paths"
)

func TestOutputReportHuman(t *testing.T) {
	env := newTestEnv(t)
	report := env.doctor(t).Run(context.Background())

	var buf bytes.Buffer
	om := NewOutputManager(&buf, false, false, false)
	require.NoError(t, om.OutputReport(report, false))

	out := buf.String()
	assert.Contains(t, out, ReportTitle)
	for _, name := range expectedSections {
		assert.Contains(t, out, "Checking "+name+"...")
	}
	assert.Contains(t, out, SummaryTitle)
	assert.Contains(t, out, "Found 8 issue(s)")
	assert.Contains(t, out, MSG_SUMMARY_FIX_HINT)
	assert.NotContains(t, out, DetailsTitle)
	assert.NotContains(t, out, "\x1b[", "colors are disabled")
}

func TestOutputReportFixRequested(t *testing.T) {
	env := newTestEnv(t)
	report := env.doctor(t).Run(context.Background())

	var buf bytes.Buffer
	require.NoError(t, NewOutputManager(&buf, false, false, false).OutputReport(report, true))

	assert.Contains(t, buf.String(), FixAttemptMessage)
	assert.NotContains(t, buf.String(), MSG_SUMMARY_FIX_HINT)
}

func TestOutputReportClean(t *testing.T) {
	env := newTestEnv(t)
	env.bootstrap(t)
	env.verbose = true
	report := env.doctor(t).Run(context.Background())

	var buf bytes.Buffer
	require.NoError(t, NewOutputManager(&buf, false, true, false).OutputReport(report, false))

	out := buf.String()
	assert.Contains(t, out, MSG_SUMMARY_CLEAN)
	assert.Contains(t, out, DetailsTitle)
	assert.Contains(t, out, "Working Dir: "+env.workDir)
	assert.NotContains(t, out, MSG_SUMMARY_FIX_HINT)
}

func TestOutputReportJSON(t *testing.T) {
	env := newTestEnv(t)
	report := env.doctor(t).Run(context.Background())

	var buf bytes.Buffer
	om := NewOutputManager(&buf, true, false, false)
	require.True(t, om.JSONMode())
	require.NoError(t, om.OutputReport(report, false))
	om.OutputSummary(SummaryTitle, report)

	var decoded struct {
		Sections []struct {
			Name     string `json:"name"`
			Outcomes []struct {
				Severity string `json:"severity"`
			} `json:"outcomes"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded), buf.String())
	require.Len(t, decoded.Sections, len(expectedSections))
	assert.Equal(t, SECTION_ARCHITECTURE, decoded.Sections[0].Name)
	assert.Equal(t, "ok", decoded.Sections[0].Outcomes[0].Severity)
}

func TestOutputFix(t *testing.T) {
	layout := paths.NewLayout("/tmp/velo-home")

	t.Run("lists created directories", func(t *testing.T) {
		var buf bytes.Buffer
		NewOutputManager(&buf, false, false, false).OutputFix(&FixReport{
			Attempted:          true,
			Created:            []paths.Directory{{Name: "Bin", Path: layout.Bin}},
			ManualIntervention: true,
		})

		out := buf.String()
		assert.Contains(t, out, FixTitle)
		assert.Contains(t, out, "Created Bin: "+layout.Bin)
		assert.Contains(t, out, MSG_FIX_MANUAL)
	})

	t.Run("nothing to create", func(t *testing.T) {
		var buf bytes.Buffer
		NewOutputManager(&buf, false, false, false).OutputFix(&FixReport{Attempted: true})
		assert.Contains(t, buf.String(), MSG_FIX_NOTHING)
	})

	t.Run("not attempted prints nothing", func(t *testing.T) {
		var buf bytes.Buffer
		NewOutputManager(&buf, false, false, false).OutputFix(&FixReport{})
		assert.Empty(t, buf.String())
	})
}

func TestColorEnabledHonoursNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(nil))
}
