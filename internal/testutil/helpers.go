package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"velo/internal/platform"
)

func TempDir(t *testing.T) string {
	t.Helper()

	tmpdir, err := os.MkdirTemp("", "velo-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	t.Cleanup(func() {
		_ = filepath.Walk(tmpdir, func(path string, info os.FileInfo, err error) error {
			if err == nil && info.IsDir() {
				_ = os.Chmod(path, 0755)
			}
			return nil
		})
		_ = os.RemoveAll(tmpdir)
	})

	return tmpdir
}

// WriteFile creates parent directories as needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func MkdirAll(t *testing.T, paths ...string) {
	t.Helper()
	for _, path := range paths {
		if err := os.MkdirAll(path, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", path, err)
		}
	}
}

// SkipIfRoot skips permission tests, which are meaningless for root.
func SkipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
}

// MockCommandExecutor returns canned results keyed by "cmd arg1 arg2".
type MockCommandExecutor struct {
	mu       sync.RWMutex
	commands map[string]*platform.Result
	failures map[string]error
	timeouts map[string]bool
	calls    []string
}

func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{
		commands: make(map[string]*platform.Result),
		failures: make(map[string]error),
		timeouts: make(map[string]bool),
	}
}

func commandKey(cmd string, args []string) string {
	return strings.TrimSpace(cmd + " " + strings.Join(args, " "))
}

func (m *MockCommandExecutor) AddCommand(cmd string, args []string, result *platform.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands[commandKey(cmd, args)] = result
}

// AddOutput registers a successful command printing stdout.
func (m *MockCommandExecutor) AddOutput(cmd string, args []string, stdout string) {
	m.AddCommand(cmd, args, &platform.Result{ExitCode: 0, Stdout: stdout, Duration: time.Millisecond})
}

// AddExitCode registers a command that exits non-zero.
func (m *MockCommandExecutor) AddExitCode(cmd string, args []string, code int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := commandKey(cmd, args)
	m.commands[key] = &platform.Result{ExitCode: code, Duration: time.Millisecond}
	m.failures[key] = fmt.Errorf("exit status %d", code)
}

func (m *MockCommandExecutor) AddFailure(cmd string, args []string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[commandKey(cmd, args)] = err
}

func (m *MockCommandExecutor) AddTimeout(cmd string, args []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeouts[commandKey(cmd, args)] = true
}

func (m *MockCommandExecutor) Calls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.calls...)
}

func (m *MockCommandExecutor) Execute(_ context.Context, cmd string, args []string, timeout time.Duration) (*platform.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := commandKey(cmd, args)
	m.calls = append(m.calls, key)

	if m.timeouts[key] {
		return &platform.Result{
			ExitCode: -1,
			Stderr:   fmt.Sprintf(platform.COMMAND_TIMEOUT_MESSAGE, timeout),
			Duration: timeout,
		}, fmt.Errorf(platform.ERROR_COMMAND_TIMEOUT, cmd, platform.ErrCommandTimeout, timeout)
	}

	if err, exists := m.failures[key]; exists {
		result := m.commands[key]
		if result == nil {
			result = &platform.Result{ExitCode: -1, Stderr: err.Error(), Duration: time.Millisecond}
		}
		return result, err
	}

	if result, exists := m.commands[key]; exists {
		return result, nil
	}

	return &platform.Result{ExitCode: -1, Stderr: "command not mocked"}, fmt.Errorf("command not mocked: %s", key)
}

// MockLocator resolves commands from a fixed table.
type MockLocator struct {
	Paths    map[string]string
	Failures map[string]error
}

func (l *MockLocator) Locate(_ context.Context, command string) (string, bool, error) {
	if err, ok := l.Failures[command]; ok {
		return "", false, err
	}
	path, ok := l.Paths[command]
	return path, ok, nil
}
