package platform

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type fakeExecutor struct {
	outputs map[string]*Result
	errs    map[string]error
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{outputs: map[string]*Result{}, errs: map[string]error{}}
}

func (f *fakeExecutor) key(cmd string, args []string) string {
	return strings.TrimSpace(cmd + " " + strings.Join(args, " "))
}

func (f *fakeExecutor) on(cmd string, args []string, result *Result, err error) {
	k := f.key(cmd, args)
	f.outputs[k] = result
	if err != nil {
		f.errs[k] = err
	}
}

func (f *fakeExecutor) Execute(_ context.Context, cmd string, args []string, _ time.Duration) (*Result, error) {
	k := f.key(cmd, args)
	result, ok := f.outputs[k]
	if !ok {
		return &Result{ExitCode: -1}, fmt.Errorf("unexpected command %q", k)
	}
	return result, f.errs[k]
}
