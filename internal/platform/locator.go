package platform

import (
	"context"
	"strings"
	"time"
)

// CommandLocator answers "where is this executable" the way the user's shell would.
type CommandLocator interface {
	// Locate returns the resolved path and true, or "" and false when the
	// command is not on PATH. err is only set when the probe itself failed.
	Locate(ctx context.Context, command string) (string, bool, error)
}

type execLocator struct {
	executor CommandExecutor
	timeout  time.Duration
}

// NewCommandLocator builds a locator on top of `which` (or `where` on Windows).
func NewCommandLocator(executor CommandExecutor, timeout time.Duration) CommandLocator {
	return &execLocator{executor: executor, timeout: timeout}
}

func (l *execLocator) Locate(ctx context.Context, command string) (string, bool, error) {
	tool := COMMAND_WHICH
	if IsWindows() {
		tool = COMMAND_WHERE
	}

	result, err := l.executor.Execute(ctx, tool, []string{command}, l.timeout)
	if err != nil {
		if IsTimeout(err) {
			return "", false, err
		}
		if result != nil && result.ExitCode > 0 {
			return "", false, nil
		}
		return "", false, err
	}

	// `where` can print several matches; the first one wins.
	path := strings.TrimSpace(strings.SplitN(result.Stdout, "\n", 2)[0])
	if path == "" {
		return "", false, nil
	}
	return path, true, nil
}
