package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"velo/internal/common"
)

// ErrCommandTimeout is wrapped by Execute when the probe exceeded its deadline.
var ErrCommandTimeout = errors.New("command timed out")

type Result struct {
	ExitCode int           `json:"exit_code"`
	Stdout   string        `json:"stdout"`
	Stderr   string        `json:"stderr"`
	Duration time.Duration `json:"duration"`
}

// CommandExecutor runs external probes. Every call is bounded by timeout.
type CommandExecutor interface {
	Execute(ctx context.Context, cmd string, args []string, timeout time.Duration) (*Result, error)
}

// probeEnvironment pins the locale so probe output is not translated.
var probeEnvironment = map[string]string{
	ENV_VAR_LC_ALL: PROBE_LOCALE,
}

type processExecutor struct {
	logger *common.Logger
	env    map[string]string
}

func NewCommandExecutor(logger *common.Logger) CommandExecutor {
	if logger == nil {
		logger = common.NewNopLogger()
	}
	return &processExecutor{logger: logger.Named("exec"), env: probeEnvironment}
}

func (p *processExecutor) Execute(ctx context.Context, cmd string, args []string, timeout time.Duration) (*Result, error) {
	return p.executeWithEnv(ctx, cmd, args, p.env, timeout)
}

func (p *processExecutor) executeWithEnv(ctx context.Context, cmd string, args []string, env map[string]string, timeout time.Duration) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()

	execCmd := exec.CommandContext(ctx, cmd, args...)

	if env != nil {
		execCmd.Env = os.Environ()
		for key, value := range env {
			execCmd.Env = append(execCmd.Env, fmt.Sprintf(ENV_VAR_FORMAT, key, value))
		}
	}

	var stderr bytes.Buffer
	execCmd.Stderr = &stderr

	stdout, err := execCmd.Output()
	duration := time.Since(start)

	result := &Result{
		Stdout:   string(stdout),
		Stderr:   stderr.String(),
		Duration: duration,
	}

	if err != nil {
		// The deadline check must come first: a killed process also reports an ExitError.
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			result.ExitCode = -1
			result.Stderr = fmt.Sprintf(COMMAND_TIMEOUT_MESSAGE, timeout)
			p.logger.Warn("probe timed out", "command", cmd, "args", args, "timeout", timeout)
			return result, fmt.Errorf(ERROR_COMMAND_TIMEOUT, cmd, ErrCommandTimeout, timeout)
		}

		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			result.ExitCode = exitError.ExitCode()
		} else {
			result.ExitCode = -1
			result.Stderr = err.Error()
		}
		p.logger.Debug("probe failed", "command", cmd, "args", args, "exit_code", result.ExitCode, "duration", duration)
		return result, err
	}

	result.ExitCode = 0
	p.logger.Debug("probe finished", "command", cmd, "args", args, "duration", duration)
	return result, nil
}

// IsTimeout reports whether err came from a probe that exceeded its deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrCommandTimeout)
}
