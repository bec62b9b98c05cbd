package kubectl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/renato0307/kswitch/internal/logging"
)

// Runner runs kubectl with the given arguments and returns its stdout
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExecutorOptions configures kubectl command execution
type ExecutorOptions struct {
	Kubeconfig string        // Appended as --kubeconfig when set
	Timeout    time.Duration // Per-call timeout (0 = wait indefinitely)
}

// Executor runs kubectl commands via subprocess
type Executor struct {
	path       string
	kubeconfig string
	timeout    time.Duration
}

// NewExecutor creates a new kubectl executor for the binary at path
func NewExecutor(path string, opts ExecutorOptions) *Executor {
	if path == "" {
		path = DefaultCommand
	}
	return &Executor{
		path:       path,
		kubeconfig: opts.Kubeconfig,
		timeout:    opts.Timeout,
	}
}

// Path returns the kubectl binary this executor invokes
func (e *Executor) Path() string {
	return e.path
}

// Run starts kubectl, drains stdout and stderr, and waits for it to exit.
// Every failure is returned as a *ToolError.
func (e *Executor) Run(ctx context.Context, args ...string) (string, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	op := strings.Join(args, " ")
	cmd := exec.CommandContext(ctx, e.path, e.buildArgs(args)...)

	// Set up I/O
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	timing := logging.Start("kubectl " + op)
	defer logging.End(timing)

	if err := cmd.Start(); err != nil {
		logging.Warn("kubectl failed to start", "path", e.path, "op", op, "error", err)
		return "", &ToolError{
			Op:      op,
			Message: fmt.Sprintf("%v: %v", errStart, err),
			Err:     fmt.Errorf("%w: %w", errStart, err),
		}
	}

	if err := cmd.Wait(); err != nil {
		toolErr := &ToolError{
			Op:     op,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			toolErr.Message = fmt.Sprintf("kubectl command timed out after %v", e.timeout)
			toolErr.Err = ctx.Err()
		case errors.Is(ctx.Err(), context.Canceled):
			toolErr.Message = "kubectl command cancelled"
			toolErr.Err = ctx.Err()
		default:
			toolErr.Message = "kubectl error: " + toolErr.detail()
		}
		logging.Warn("kubectl exited with error", "op", op, "error", toolErr.Message)
		return "", toolErr
	}

	return stdout.String(), nil
}

// buildArgs appends the global flags configured on the executor
func (e *Executor) buildArgs(args []string) []string {
	full := make([]string, 0, len(args)+2)
	full = append(full, args...)
	if e.kubeconfig != "" {
		full = append(full, "--kubeconfig", e.kubeconfig)
	}
	return full
}
